package service

import (
	"context"
	"errors"
	"testing"
)

func TestTagService_CreateValidation(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	if _, err := svc.Create(context.Background(), "  ", "#FF0000"); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank name: got %v", err)
	}
	if _, err := svc.Create(context.Background(), "bug", "red"); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad color: got %v", err)
	}

	tag, err := svc.Create(context.Background(), "bug", "#FF0000")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tag.Name != "bug" || tag.Color != "#FF0000" {
		t.Fatalf("got %+v", tag)
	}
}

func TestTagService_NameUnique(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())

	first, _ := svc.Create(context.Background(), "bug", "#FF0000")
	if _, err := svc.Create(context.Background(), "bug", "#00FF00"); !errors.Is(err, ErrTagNameTaken) {
		t.Fatalf("duplicate name: got %v, want ErrTagNameTaken", err)
	}

	other, _ := svc.Create(context.Background(), "feature", "#00FF00")
	name := "bug"
	if _, err := svc.Update(context.Background(), other.ID, &name, nil); !errors.Is(err, ErrTagNameTaken) {
		t.Fatalf("rename onto taken name: got %v, want ErrTagNameTaken", err)
	}

	// Updating a tag without renaming keeps its own name.
	color := "#0000FF"
	if _, err := svc.Update(context.Background(), first.ID, nil, &color); err != nil {
		t.Fatalf("recolor: %v", err)
	}
}

func TestTagService_GetAndDelete(t *testing.T) {
	svc := NewTagService(newFakeTagRepo())
	tag, _ := svc.Create(context.Background(), "bug", "#FF0000")

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: got %v", err)
	}
	if err := svc.Delete(context.Background(), tag.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), tag.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: got %v, want ErrNotFound", err)
	}
}
