// Package buildcontext provides the build context of an invocation, read from a
// document written by the build engine or detected from the CI environment.
package buildcontext

import "github.com/LambdaTest/ghnotify/pkg/core"

// Item is a plain node of the job hierarchy.
type Item struct {
	name   string
	parent core.Item
}

// NewItem returns an item named name inside parent, nil at the top.
func NewItem(name string, parent core.Item) *Item {
	return &Item{name: name, parent: parent}
}

// Name returns the full name of the item.
func (i *Item) Name() string {
	return i.name
}

// Parent returns the enclosing item.
func (i *Item) Parent() core.Item {
	return i.parent
}

// SourceOwner is an item that owns SCM sources.
type SourceOwner struct {
	*Item
	sources []core.SCMSource
}

// NewSourceOwner returns a source owner named name inside parent.
func NewSourceOwner(name string, parent core.Item, sources []core.SCMSource) *SourceOwner {
	return &SourceOwner{Item: NewItem(name, parent), sources: sources}
}

// Sources returns the configured sources in order.
func (s *SourceOwner) Sources() []core.SCMSource {
	return s.sources
}

// Context is a static build context.
type Context struct {
	job      core.Item
	revision *core.Revision
	runURL   string
}

// New returns a build context.
func New(job core.Item, revision *core.Revision, runURL string) *Context {
	return &Context{job: job, revision: revision, runURL: runURL}
}

// Job returns the job of the build.
func (c *Context) Job() core.Item {
	return c.job
}

// Revision returns the build revision, nil when none was recorded.
func (c *Context) Revision() *core.Revision {
	return c.revision
}

// RunURL returns the build result page.
func (c *Context) RunURL() string {
	return c.runURL
}
