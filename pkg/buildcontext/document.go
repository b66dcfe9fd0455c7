package buildcontext

import (
	"context"
	"os"

	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// itemDocument is an item of the job hierarchy. An item with a "sources" key,
// even an empty one, is a source owner.
type itemDocument struct {
	Name    string           `json:"name"`
	Sources []core.SCMSource `json:"sources"`
	Parent  *itemDocument    `json:"parent"`
}

type document struct {
	Job      *itemDocument  `json:"job"`
	Revision *core.Revision `json:"revision"`
	RunURL   string         `json:"runUrl"`
}

// Parse decodes a build-context document.
func Parse(data []byte) (core.BuildContext, error) {
	doc := new(document)
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errs.WithCause(errs.ErrUnMarshalJSON, err)
	}
	return New(toItem(doc.Job), doc.Revision, doc.RunURL), nil
}

func toItem(doc *itemDocument) core.Item {
	if doc == nil {
		return nil
	}
	parent := toItem(doc.Parent)
	if doc.Sources != nil {
		return NewSourceOwner(doc.Name, parent, doc.Sources)
	}
	return NewItem(doc.Name, parent)
}

type fileLoader struct {
	path   string
	logger lumber.Logger
}

// NewFileLoader returns a loader reading the document at path.
func NewFileLoader(path string, logger lumber.Logger) core.BuildContextLoader {
	return &fileLoader{path: path, logger: logger}
}

func (f *fileLoader) Load(ctx context.Context) (core.BuildContext, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Errorf("failed to read build context %s, error: %v", f.path, err)
		return nil, errors.Wrapf(err, "read build context %s", f.path)
	}
	bc, err := Parse(data)
	if err != nil {
		f.logger.Errorf("failed to parse build context %s, error: %v", f.path, err)
		return nil, err
	}
	return bc, nil
}
