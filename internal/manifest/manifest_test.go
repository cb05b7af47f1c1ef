package manifest

import (
	"context"
	"encoding/json"
	"testing"

	"imagebatch/internal/batch"
	"imagebatch/internal/store"
)

type memUploader struct {
	files map[string][]byte
}

func (u *memUploader) Upload(_ context.Context, params store.UploadParams) error {
	u.files[params.Name] = params.Data
	return nil
}

func TestWrite_Ordered(t *testing.T) {
	uploader := &memUploader{files: map[string][]byte{}}
	w := &Writer{uploader: uploader}

	results := []batch.Result{
		{Prompt: "a red bicycle", File: "001-a-red-bicycle.png"},
		{Prompt: "a red bicycle", File: "002-a-red-bicycle.png"},
		{Prompt: "a red bicycle", File: "003-a-red-bicycle.png"},
	}
	if err := w.Write(context.Background(), results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []batch.Result
	if err := json.Unmarshal(uploader.files[Name], &got); err != nil {
		t.Fatalf("manifest is not valid json: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i, r := range got {
		if r != results[i] {
			t.Errorf("entry %d = %+v, want %+v", i, r, results[i])
		}
	}
}

func TestWrite_Empty(t *testing.T) {
	uploader := &memUploader{files: map[string][]byte{}}
	w := &Writer{uploader: uploader}

	if err := w.Write(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []batch.Result
	if err := json.Unmarshal(uploader.files[Name], &got); err != nil {
		t.Fatalf("manifest is not valid json: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
	if string(uploader.files[Name]) == "null" {
		t.Error("empty manifest must be an empty array, not null")
	}
}
