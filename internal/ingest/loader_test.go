// ABOUTME: Tests for the document loader
// ABOUTME: Covers PDF filtering, skip-and-count on bad documents, and listing failures

package ingest

import (
	"context"
	"errors"
	"io"
	"testing"
)

type fakeStore struct {
	keys    []string
	objects map[string][]byte
	listErr error
	getErr  map[string]error
}

func (f *fakeStore) List(ctx context.Context, prefix string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.keys, nil
}

func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err, ok := f.getErr[key]; ok {
		return nil, err
	}
	return f.objects[key], nil
}

func (f *fakeStore) Put(ctx context.Context, key string, body io.Reader) (string, error) {
	return "", errors.New("not implemented")
}

func newTestLoader(store *fakeStore, t *testing.T) *Loader {
	t.Helper()
	splitter, err := NewSplitter(3000, 500)
	if err != nil {
		t.Fatalf("NewSplitter() error = %v", err)
	}
	return NewLoader(store, splitter, nil)
}

func TestLoad_ListFailureIsFatal(t *testing.T) {
	store := &fakeStore{listErr: errors.New("bucket unreachable")}
	loader := newTestLoader(store, t)

	_, _, err := loader.Load(context.Background(), "pdfs/")
	if err == nil {
		t.Fatal("Expected error when listing fails")
	}
}

func TestLoad_IgnoresNonPDFKeys(t *testing.T) {
	store := &fakeStore{
		keys: []string{"pdfs/notes.txt", "pdfs/image.png"},
	}
	loader := newTestLoader(store, t)

	chunks, report, err := loader.Load(context.Background(), "pdfs/")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Total != 0 {
		t.Errorf("Total = %d, want 0", report.Total)
	}
	if len(chunks) != 0 {
		t.Errorf("chunks = %d, want 0", len(chunks))
	}
}

func TestLoad_SkipsAndCountsBadDocuments(t *testing.T) {
	store := &fakeStore{
		keys: []string{"pdfs/broken.pdf", "pdfs/missing.pdf"},
		objects: map[string][]byte{
			"pdfs/broken.pdf": []byte("this is not a pdf"),
		},
		getErr: map[string]error{
			"pdfs/missing.pdf": errors.New("access denied"),
		},
	}
	loader := newTestLoader(store, t)

	chunks, report, err := loader.Load(context.Background(), "pdfs/")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil (bad documents are skipped)", err)
	}
	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
	if report.Failed != 2 {
		t.Errorf("Failed = %d, want 2", report.Failed)
	}
	if report.Loaded != 0 {
		t.Errorf("Loaded = %d, want 0", report.Loaded)
	}
	if len(chunks) != 0 {
		t.Errorf("chunks = %d, want 0", len(chunks))
	}
}

func TestLoad_UppercaseExtension(t *testing.T) {
	store := &fakeStore{
		keys: []string{"pdfs/SLIDES.PDF"},
		getErr: map[string]error{
			"pdfs/SLIDES.PDF": errors.New("unavailable"),
		},
	}
	loader := newTestLoader(store, t)

	_, report, err := loader.Load(context.Background(), "pdfs/")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Total != 1 {
		t.Errorf("Total = %d, want 1 (extension match is case-insensitive)", report.Total)
	}
}
