package storage

// FolderView wraps an ItemStore and restricts it to one folder.
// Reads only see items of the folder and writes place items in it.
type FolderView struct {
	underlying ItemStore
	folder     string
}

// NewFolderView creates a view of store limited to folder.
func NewFolderView(store ItemStore, folder string) *FolderView {
	return &FolderView{
		underlying: store,
		folder:     folder,
	}
}

// Get retrieves an item by ID, only if it is in this folder.
func (f *FolderView) Get(id string) *Record {
	r := f.underlying.Get(id)
	if r == nil || r.Folder != f.folder {
		return nil
	}
	return r
}

// Put stores a copy of r in this folder. r itself is not modified.
func (f *FolderView) Put(r *Record) error {
	if r == nil {
		return nil
	}
	cp := r.Clone()
	cp.Folder = f.folder
	return f.underlying.Put(cp)
}

// Delete removes an item by ID, only if it is in this folder.
func (f *FolderView) Delete(id string) bool {
	if f.Get(id) == nil {
		return false
	}
	return f.underlying.Delete(id)
}

// List returns the items of this folder.
func (f *FolderView) List() []*Record {
	return f.underlying.ListByFolder(f.folder)
}

// ListByFolder returns the items of folder if it is this view's folder.
func (f *FolderView) ListByFolder(folder string) []*Record {
	if folder != f.folder {
		return nil
	}
	return f.List()
}

// Count returns the number of items in this folder.
func (f *FolderView) Count() int {
	return len(f.List())
}

// Clear removes all items of this folder.
func (f *FolderView) Clear() {
	for _, r := range f.List() {
		f.underlying.Delete(r.ID)
	}
}

// Exists checks if an item with the given ID is in this folder.
func (f *FolderView) Exists(id string) bool {
	return f.Get(id) != nil
}

// Folder returns the folder this view is limited to.
func (f *FolderView) Folder() string {
	return f.folder
}

var _ ItemStore = (*FolderView)(nil)
