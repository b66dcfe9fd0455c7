// Package testutils provides an in-process fake of the GitHub API used by tests.
package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const minSHAPrefix = 4

// PostedStatus is a status received by the fake API.
type PostedStatus struct {
	Repo        string
	SHA         string
	Token       string
	State       string `json:"state"`
	Context     string `json:"context"`
	Description string `json:"description"`
	TargetURL   string `json:"target_url"`
}

// FakeGitHub serves the subset of the GitHub API used for commit statuses.
type FakeGitHub struct {
	server *httptest.Server

	mu           sync.Mutex
	tokens       map[string]string
	repos        []string
	commits      map[string][]string
	statusCode   int
	requests     []string
	statuses     []PostedStatus
	reposPerPage int
}

// NewFakeGitHub starts a fake GitHub API. Close must be called when done.
func NewFakeGitHub() *FakeGitHub {
	gin.SetMode(gin.TestMode)
	f := &FakeGitHub{
		tokens:       map[string]string{},
		commits:      map[string][]string{},
		statusCode:   http.StatusCreated,
		reposPerPage: 0,
	}
	router := gin.New()
	router.Use(f.record, f.authenticate)
	router.GET("/user", f.handleUser)
	router.GET("/user/repos", f.handleRepos)
	router.GET("/repos/:owner/:name/commits/:sha", f.handleCommit)
	router.POST("/repos/:owner/:name/statuses/:sha", f.handleStatus)
	f.server = httptest.NewServer(router)
	return f
}

// URL returns the API endpoint of the fake.
func (f *FakeGitHub) URL() string {
	return f.server.URL
}

// Close shuts the server down.
func (f *FakeGitHub) Close() {
	f.server.Close()
}

// AddToken accepts token as the identity login.
func (f *FakeGitHub) AddToken(token, login string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = login
}

// AddRepo makes the repository visible to every accepted token.
func (f *FakeGitHub) AddRepo(fullName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos = append(f.repos, fullName)
}

// AddCommit adds a commit with the full sha to repo.
func (f *FakeGitHub) AddCommit(repo, sha string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits[repo] = append(f.commits[repo], sha)
}

// SetReposPerPage forces the page size of the repository listing.
func (f *FakeGitHub) SetReposPerPage(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reposPerPage = n
}

// FailStatuses makes status creation answer with code.
func (f *FakeGitHub) FailStatuses(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCode = code
}

// Requests returns the "METHOD path" of every request received.
func (f *FakeGitHub) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// CountRequests returns the number of requests with the method and path prefix.
func (f *FakeGitHub) CountRequests(method, pathPrefix string) int {
	n := 0
	for _, r := range f.Requests() {
		if strings.HasPrefix(r, method+" "+pathPrefix) {
			n++
		}
	}
	return n
}

// Statuses returns the statuses received so far.
func (f *FakeGitHub) Statuses() []PostedStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]PostedStatus(nil), f.statuses...)
}

func (f *FakeGitHub) record(c *gin.Context) {
	f.mu.Lock()
	f.requests = append(f.requests, c.Request.Method+" "+c.Request.URL.Path)
	f.mu.Unlock()
	c.Next()
}

func (f *FakeGitHub) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := header
	for _, scheme := range []string{"Bearer ", "token "} {
		token = strings.TrimPrefix(token, scheme)
	}
	f.mu.Lock()
	login, ok := f.tokens[token]
	f.mu.Unlock()
	if header == "" || !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Bad credentials"})
		return
	}
	c.Set("login", login)
	c.Set("token", token)
	c.Next()
}

func (f *FakeGitHub) handleUser(c *gin.Context) {
	login := c.GetString("login")
	c.JSON(http.StatusOK, gin.H{
		"id":    len(login),
		"login": login,
		"name":  login,
		"email": login + "@example.com",
	})
}

func (f *FakeGitHub) handleRepos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "30"))
	f.mu.Lock()
	if f.reposPerPage > 0 {
		perPage = f.reposPerPage
	}
	repos := append([]string(nil), f.repos...)
	f.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 30
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(repos) {
		start = len(repos)
	}
	if end > len(repos) {
		end = len(repos)
	}
	if end < len(repos) {
		next := fmt.Sprintf("%s%s?page=%d&per_page=%d", f.server.URL, c.Request.URL.Path, page+1, perPage)
		c.Header("Link", fmt.Sprintf(`<%s>; rel="next"`, next))
	}

	body := make([]gin.H, 0, end-start)
	for i, fullName := range repos[start:end] {
		parts := strings.SplitN(fullName, "/", 2)
		body = append(body, gin.H{
			"id":             start + i + 1,
			"owner":          gin.H{"login": parts[0]},
			"name":           parts[1],
			"full_name":      fullName,
			"private":        false,
			"default_branch": "main",
			"clone_url":      fmt.Sprintf("https://github.com/%s.git", fullName),
			"ssh_url":        fmt.Sprintf("git@github.com:%s.git", fullName),
			"html_url":       fmt.Sprintf("https://github.com/%s", fullName),
			"permissions":    gin.H{"admin": false, "push": true, "pull": true},
		})
	}
	c.JSON(http.StatusOK, body)
}

func (f *FakeGitHub) handleCommit(c *gin.Context) {
	repo := c.Param("owner") + "/" + c.Param("name")
	sha := c.Param("sha")
	canonical, ok := f.lookupCommit(repo, sha)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "No commit found for SHA: " + sha})
		return
	}
	signature := gin.H{"name": "octocat", "email": "octocat@example.com", "date": time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)}
	c.JSON(http.StatusOK, gin.H{
		"sha":      canonical,
		"html_url": fmt.Sprintf("https://github.com/%s/commit/%s", repo, canonical),
		"commit": gin.H{
			"message":   "commit " + canonical,
			"author":    signature,
			"committer": signature,
		},
		"author":    gin.H{"login": "octocat"},
		"committer": gin.H{"login": "octocat"},
	})
}

func (f *FakeGitHub) handleStatus(c *gin.Context) {
	var status PostedStatus
	if err := c.ShouldBindJSON(&status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	status.Repo = c.Param("owner") + "/" + c.Param("name")
	status.SHA = c.Param("sha")
	status.Token = c.GetString("token")

	f.mu.Lock()
	code := f.statusCode
	if code == http.StatusCreated {
		f.statuses = append(f.statuses, status)
	}
	n := len(f.statuses)
	f.mu.Unlock()

	if code != http.StatusCreated {
		c.JSON(code, gin.H{"message": http.StatusText(code)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":          n,
		"state":       status.State,
		"context":     status.Context,
		"description": status.Description,
		"target_url":  status.TargetURL,
	})
}

func (f *FakeGitHub) lookupCommit(repo, sha string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, known := range f.commits[repo] {
		if known == sha || (len(sha) >= minSHAPrefix && strings.HasPrefix(known, sha)) {
			return known, true
		}
	}
	return "", false
}
