package storage

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/beevik/etree"
)

// --- Helper ---

func newRecord(id, folder, subject string) *Record {
	elem := etree.NewElement("t:Task")
	elem.CreateElement("t:Subject").SetText(subject)
	return &Record{
		ID:        id,
		ChangeKey: "ck-" + id,
		Folder:    folder,
		Element:   elem,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func subjectOf(r *Record) string {
	if s := r.Element.SelectElement("Subject"); s != nil {
		return s.Text()
	}
	return ""
}

func ids(records []*Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// --- InMemoryItemStore Tests ---

func TestNewInMemoryItemStore(t *testing.T) {
	store := NewInMemoryItemStore()
	if store == nil {
		t.Fatal("NewInMemoryItemStore() returned nil")
	}
	if store.Count() != 0 {
		t.Errorf("new store Count() = %d, want 0", store.Count())
	}
}

func TestInMemory_PutAndGet(t *testing.T) {
	store := NewInMemoryItemStore()
	if err := store.Put(newRecord("a", "tasks", "first")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got := store.Get("a")
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if got.ChangeKey != "ck-a" || subjectOf(got) != "first" {
		t.Errorf("Get() = %+v, subject %q", got, subjectOf(got))
	}
}

func TestInMemory_PutNil(t *testing.T) {
	store := NewInMemoryItemStore()
	if err := store.Put(nil); err != nil {
		t.Errorf("Put(nil) error = %v, want nil", err)
	}
	if store.Count() != 0 {
		t.Errorf("Count() after Put(nil) = %d, want 0", store.Count())
	}
}

func TestInMemory_PutEmptyID(t *testing.T) {
	store := NewInMemoryItemStore()
	if err := store.Put(newRecord("", "tasks", "x")); err == nil {
		t.Error("Put() with empty ID: expected error")
	}
}

func TestInMemory_GetReturnsCopy(t *testing.T) {
	store := NewInMemoryItemStore()
	rec := newRecord("a", "tasks", "original")
	_ = store.Put(rec)

	// Mutating the caller's record after Put must not reach the store.
	rec.Element.SelectElement("Subject").SetText("changed by caller")
	got := store.Get("a")
	if subjectOf(got) != "original" {
		t.Errorf("stored subject = %q, want original", subjectOf(got))
	}

	// Mutating a returned record must not reach the store either.
	got.Element.SelectElement("Subject").SetText("changed by reader")
	if subjectOf(store.Get("a")) != "original" {
		t.Error("Get() returned a shared element")
	}
}

func TestInMemory_GetNotFound(t *testing.T) {
	store := NewInMemoryItemStore()
	if got := store.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestInMemory_Delete(t *testing.T) {
	store := NewInMemoryItemStore()
	_ = store.Put(newRecord("a", "tasks", "x"))

	if !store.Delete("a") {
		t.Error("Delete() = false, want true")
	}
	if store.Exists("a") {
		t.Error("item still exists after Delete()")
	}
	if store.Delete("a") {
		t.Error("second Delete() = true, want false")
	}
}

func TestInMemory_List_InsertionOrder(t *testing.T) {
	store := NewInMemoryItemStore()
	for _, id := range []string{"c", "a", "b"} {
		_ = store.Put(newRecord(id, "tasks", id))
	}

	got := ids(store.List())
	want := []string{"c", "a", "b"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestInMemory_List_ReplaceKeepsPosition(t *testing.T) {
	store := NewInMemoryItemStore()
	for _, id := range []string{"a", "b", "c"} {
		_ = store.Put(newRecord(id, "tasks", id))
	}
	_ = store.Put(newRecord("a", "tasks", "updated"))

	list := store.List()
	if fmt.Sprint(ids(list)) != "[a b c]" {
		t.Errorf("List() = %v, want [a b c]", ids(list))
	}
	if subjectOf(list[0]) != "updated" {
		t.Errorf("replaced subject = %q", subjectOf(list[0]))
	}
}

func TestInMemory_ListByFolder(t *testing.T) {
	store := NewInMemoryItemStore()
	_ = store.Put(newRecord("t1", "tasks", "x"))
	_ = store.Put(newRecord("c1", "calendar", "x"))
	_ = store.Put(newRecord("t2", "tasks", "x"))

	if got := ids(store.ListByFolder("tasks")); fmt.Sprint(got) != "[t1 t2]" {
		t.Errorf("ListByFolder(tasks) = %v", got)
	}
	if got := store.ListByFolder("inbox"); len(got) != 0 {
		t.Errorf("ListByFolder(inbox) = %v, want empty", ids(got))
	}
}

func TestInMemory_Clear(t *testing.T) {
	store := NewInMemoryItemStore()
	_ = store.Put(newRecord("a", "tasks", "x"))
	_ = store.Put(newRecord("b", "tasks", "x"))
	store.Clear()

	if store.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", store.Count())
	}
	_ = store.Put(newRecord("c", "tasks", "x"))
	if store.Count() != 1 {
		t.Errorf("Count() after reuse = %d, want 1", store.Count())
	}
}

func TestInMemory_Concurrent(t *testing.T) {
	store := NewInMemoryItemStore()
	const goroutines = 50
	const ops = 100
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < ops; i++ {
				_ = store.Put(newRecord(fmt.Sprintf("item-%d-%d", g, i), "tasks", "x"))
			}
		}(g)
	}
	wg.Wait()

	if store.Count() != goroutines*ops {
		t.Errorf("Count() = %d, want %d", store.Count(), goroutines*ops)
	}

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			_ = store.List()
			_ = store.Get(fmt.Sprintf("item-%d-1", g))
			store.Delete(fmt.Sprintf("item-%d-0", g))
			_ = store.ListByFolder("tasks")
		}(g)
	}
	wg.Wait()

	if store.Count() != goroutines*(ops-1) {
		t.Errorf("Count() after deletes = %d, want %d", store.Count(), goroutines*(ops-1))
	}
}

// --- FolderView Tests ---

func TestFolderView_PutPlacesInFolder(t *testing.T) {
	store := NewInMemoryItemStore()
	view := NewFolderView(store, "tasks")

	rec := newRecord("a", "inbox", "x")
	if err := view.Put(rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if rec.Folder != "inbox" {
		t.Errorf("Put() modified caller's record: Folder = %q", rec.Folder)
	}
	if got := store.Get("a"); got == nil || got.Folder != "tasks" {
		t.Errorf("stored record = %+v, want Folder tasks", got)
	}
}

func TestFolderView_ReadsFiltered(t *testing.T) {
	store := NewInMemoryItemStore()
	_ = store.Put(newRecord("t1", "tasks", "x"))
	_ = store.Put(newRecord("c1", "calendar", "x"))
	view := NewFolderView(store, "tasks")

	if view.Get("c1") != nil {
		t.Error("Get() returned an item of another folder")
	}
	if !view.Exists("t1") || view.Exists("c1") {
		t.Error("Exists() not filtered by folder")
	}
	if view.Count() != 1 {
		t.Errorf("Count() = %d, want 1", view.Count())
	}
	if got := view.ListByFolder("calendar"); got != nil {
		t.Errorf("ListByFolder(other) = %v, want nil", ids(got))
	}
	if view.Folder() != "tasks" {
		t.Errorf("Folder() = %q", view.Folder())
	}
}

func TestFolderView_DeleteOnlyOwnFolder(t *testing.T) {
	store := NewInMemoryItemStore()
	_ = store.Put(newRecord("t1", "tasks", "x"))
	_ = store.Put(newRecord("c1", "calendar", "x"))
	view := NewFolderView(store, "tasks")

	if view.Delete("c1") {
		t.Error("Delete() removed an item of another folder")
	}
	if !store.Exists("c1") {
		t.Error("item of another folder is gone")
	}
	if !view.Delete("t1") {
		t.Error("Delete(own) = false")
	}
}

func TestFolderView_Clear(t *testing.T) {
	store := NewInMemoryItemStore()
	_ = store.Put(newRecord("t1", "tasks", "x"))
	_ = store.Put(newRecord("t2", "tasks", "x"))
	_ = store.Put(newRecord("c1", "calendar", "x"))

	NewFolderView(store, "tasks").Clear()
	if got := ids(store.List()); fmt.Sprint(got) != "[c1]" {
		t.Errorf("after Clear() List() = %v, want [c1]", got)
	}
}

func TestItemStore_Implementations(t *testing.T) {
	var _ ItemStore = (*InMemoryItemStore)(nil)
	var _ ItemStore = (*FolderView)(nil)
}
