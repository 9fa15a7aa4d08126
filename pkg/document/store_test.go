package document

import "testing"

func TestInMemoryStore_SaveLoad(t *testing.T) {
	s := NewInMemoryStore()
	id, err := s.Save("graph-a", []byte(`{"nodes":[],"edges":[]}`))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if rec.Name != "graph-a" {
		t.Fatalf("Load() name = %q, want graph-a", rec.Name)
	}
}

func TestInMemoryStore_SaveEmptyName(t *testing.T) {
	s := NewInMemoryStore()
	if _, err := s.Save("", []byte(`{}`)); err != ErrEmptyName {
		t.Fatalf("Save() error = %v, want ErrEmptyName", err)
	}
}

func TestInMemoryStore_LoadNotFound(t *testing.T) {
	s := NewInMemoryStore()
	if _, err := s.Load("missing"); err != ErrDocumentNotFound {
		t.Fatalf("Load() error = %v, want ErrDocumentNotFound", err)
	}
}

func TestInMemoryStore_UpdateAndDelete(t *testing.T) {
	s := NewInMemoryStore()
	id, _ := s.Save("graph-a", []byte(`{}`))

	if err := s.Update(id, "graph-b", []byte(`{"nodes":[]}`)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	rec, _ := s.Load(id)
	if rec.Name != "graph-b" {
		t.Fatalf("Load() name = %q, want graph-b", rec.Name)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Load(id); err != ErrDocumentNotFound {
		t.Fatalf("Load() after delete error = %v, want ErrDocumentNotFound", err)
	}
}

func TestInMemoryStore_List(t *testing.T) {
	s := NewInMemoryStore()
	s.Save("a", []byte(`{}`))
	s.Save("b", []byte(`{}`))

	if got := len(s.List()); got != 2 {
		t.Fatalf("List() = %d records, want 2", got)
	}
}
