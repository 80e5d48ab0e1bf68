package sqlite

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gridfig/gridfig/pkg/types"
)

func blobsTableFor(t *testing.T, b *Backend) types.Table {
	t.Helper()
	tbl, err := b.GetTable(types.TableBlobs)
	if err != nil {
		t.Fatalf("GetTable(blobs) failed: %v", err)
	}
	return tbl
}

// pngHeader is enough of a PNG signature for media type sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestBlobsPutGetRoundTrip(t *testing.T) {
	b := attachTestBackend(t)
	blobs := blobsTableFor(t, b)

	content := append(append([]byte{}, pngHeader...), 0xde, 0xad, 0xbe, 0xef)
	id, err := blobs.Set("", &types.Blob{Name: "panel.png", Content: content})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if id == "" {
		t.Fatal("Set returned empty ID")
	}

	got, err := blobs.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	blob := got.(*types.Blob)
	if !bytes.Equal(blob.Content, content) {
		t.Error("content bytes do not round-trip")
	}
	if blob.Name != "panel.png" {
		t.Errorf("name = %q, want panel.png", blob.Name)
	}
	if blob.MediaType != "image/png" {
		t.Errorf("sniffed media type = %q, want image/png", blob.MediaType)
	}
}

func TestBlobsExplicitMediaTypeKept(t *testing.T) {
	b := attachTestBackend(t)
	blobs := blobsTableFor(t, b)

	id, err := blobs.Set("", &types.Blob{
		Name:      "scan.tiff",
		MediaType: "image/tiff",
		Content:   []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, _ := blobs.Get(id)
	if mt := got.(*types.Blob).MediaType; mt != "image/tiff" {
		t.Errorf("media type = %q, want image/tiff", mt)
	}
}

func TestBlobsSetValidation(t *testing.T) {
	b := attachTestBackend(t)
	blobs := blobsTableFor(t, b)

	if _, err := blobs.Set("", 42); !errors.Is(err, types.ErrInvalidData) {
		t.Errorf("expected ErrInvalidData, got %v", err)
	}
	if _, err := blobs.Set("", &types.Blob{Name: "empty"}); !errors.Is(err, types.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestBlobsGetErrors(t *testing.T) {
	b := attachTestBackend(t)
	blobs := blobsTableFor(t, b)

	if _, err := blobs.Get(""); !errors.Is(err, types.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := blobs.Get("missing"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBlobsDelete(t *testing.T) {
	b := attachTestBackend(t)
	blobs := blobsTableFor(t, b)

	id, err := blobs.Set("", &types.Blob{Name: "x", Content: []byte{1}})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := blobs.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := blobs.Get(id); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := blobs.Delete(id); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestBlobsFetchByMediaType(t *testing.T) {
	b := attachTestBackend(t)
	blobs := blobsTableFor(t, b)

	fixtures := []*types.Blob{
		{Name: "a.png", MediaType: "image/png", Content: []byte{1}},
		{Name: "b.png", MediaType: "image/png", Content: []byte{2}},
		{Name: "c.jpg", MediaType: "image/jpeg", Content: []byte{3}},
	}
	for _, f := range fixtures {
		if _, err := blobs.Set("", f); err != nil {
			t.Fatalf("Set %q failed: %v", f.Name, err)
		}
	}

	pngs, err := blobs.Fetch(types.Filter{"media_type": "image/png"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(pngs) != 2 {
		t.Errorf("Fetch returned %d blobs, want 2", len(pngs))
	}

	all, err := blobs.Fetch(nil)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Fetch returned %d blobs, want 3", len(all))
	}
}
