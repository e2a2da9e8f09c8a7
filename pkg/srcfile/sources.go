// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package srcfile

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// Source supplies one piece of source text along with the name that Files
// built from it carry into their Locations and Spans.
type Source interface {
	Description() string
	Name() string
	Bytes() ([]byte, error)
}

var _ []Source = []Source{BytesSource{}, StdinSource{}, LocalSource{}, HTTPSource{}}

type BytesSource struct {
	name string
	data []byte
}

func NewBytesSource(name string, data []byte) BytesSource { return BytesSource{name, data} }

func (s BytesSource) Description() string    { return fmt.Sprintf("source '%s'", s.name) }
func (s BytesSource) Name() string           { return s.name }
func (s BytesSource) Bytes() ([]byte, error) { return s.data, nil }

type StdinSource struct {
	bytes []byte
	err   error
}

// NewStdinSource consumes standard input immediately so that later reads
// cannot race with other readers of the same stream.
func NewStdinSource() StdinSource {
	bs, err := io.ReadAll(os.Stdin)
	return StdinSource{bs, err}
}

func (s StdinSource) Description() string    { return "stdin" }
func (s StdinSource) Name() string           { return "stdin" }
func (s StdinSource) Bytes() ([]byte, error) { return s.bytes, s.err }

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string    { return fmt.Sprintf("file '%s'", s.path) }
func (s LocalSource) Name() string           { return s.path }
func (s LocalSource) Bytes() ([]byte, error) { return os.ReadFile(s.path) }

type HTTPSource struct {
	url    string
	Client *http.Client
}

func NewHTTPSource(url string) HTTPSource { return HTTPSource{url, &http.Client{}} }

func (s HTTPSource) Description() string { return fmt.Sprintf("HTTP URL '%s'", s.url) }

// Name returns the full URL so that spans over different remote sources
// cannot collide on a shared base name.
func (s HTTPSource) Name() string { return s.url }

func (s HTTPSource) Bytes() ([]byte, error) {
	resp, err := s.Client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, resp.Status)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Reading URL '%s': %s", s.url, err)
	}

	return result, nil
}
