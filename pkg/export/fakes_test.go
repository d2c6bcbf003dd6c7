package export

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/notepad/pkg/core"
)

type fakeSharer struct {
	mu        sync.Mutex
	allowFile bool
	failImage error
	failText  error
	shared    []Payload
}

func (f *fakeSharer) CanShare(p Payload) bool {
	return len(p.Files) == 0 || f.allowFile
}

func (f *fakeSharer) Share(ctx context.Context, p Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(p.Files) > 0 && f.failImage != nil {
		return f.failImage
	}
	if len(p.Files) == 0 && f.failText != nil {
		return f.failText
	}
	f.shared = append(f.shared, p)
	return nil
}

type fakeOpener struct {
	fail   error
	opened []string
}

func (f *fakeOpener) Open(ctx context.Context, url string) error {
	if f.fail != nil {
		return f.fail
	}
	f.opened = append(f.opened, url)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(msg string) {
	f.messages = append(f.messages, msg)
}

type fakeFiles struct {
	fail  error
	saved map[string][]byte
}

func (f *fakeFiles) Save(ctx context.Context, name string, data []byte) error {
	if f.fail != nil {
		return f.fail
	}
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[name] = data
	return nil
}

var errBoom = errors.New("boom")

func lookupOf(notes ...core.Note) Lookup {
	list := core.NoteList(notes)
	return list.Find
}
