package record

import (
	"dedup-tools/crypto"
	"encoding/json"
	"github.com/google/uuid"
)

// Summary is the flat document form of any record, without children.
type Summary struct {
	ID   uuid.UUID     `json:"id"`
	Name string        `json:"name"`
	Path string        `json:"path"`
	Size int64         `json:"size"`
	Hash crypto.Digest `json:"hash"`
}

func Summarize(r Record) Summary {
	return Summary{
		ID:   r.ID(),
		Name: r.Name(),
		Path: r.Path(),
		Size: r.Size(),
		Hash: r.Hash(),
	}
}

type directoryDocument struct {
	Summary
	Directories []*directoryDocument `json:"directories"`
	Files       []Summary            `json:"files"`
}

func (f *FileRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(Summarize(f))
}

func (f *FileRecord) UnmarshalJSON(data []byte) error {
	var document Summary

	if err := json.Unmarshal(data, &document); err != nil {
		return err
	}

	f.base = fromSummary(document)
	return nil
}

func (d *DirectoryRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.document())
}

func (d *DirectoryRecord) UnmarshalJSON(data []byte) error {
	var document directoryDocument

	if err := json.Unmarshal(data, &document); err != nil {
		return err
	}

	*d = *fromDocument(&document)
	return nil
}

func (d *DirectoryRecord) document() *directoryDocument {
	document := &directoryDocument{
		Summary:     Summarize(d),
		Directories: make([]*directoryDocument, 0, len(d.directories)),
		Files:       make([]Summary, 0, len(d.files)),
	}

	for _, directory := range d.directories {
		document.Directories = append(document.Directories, directory.document())
	}

	for _, file := range d.files {
		document.Files = append(document.Files, Summarize(file))
	}

	return document
}

func fromDocument(document *directoryDocument) *DirectoryRecord {
	directory := &DirectoryRecord{base: fromSummary(document.Summary)}

	for _, child := range document.Directories {
		directory.directories = append(directory.directories, fromDocument(child))
	}

	for _, file := range document.Files {
		directory.files = append(directory.files, &FileRecord{fromSummary(file)})
	}

	return directory
}

// Restored records keep their persisted ids. Documents without an id get a
// fresh one so suppression bookkeeping still works.
func fromSummary(summary Summary) base {
	id := summary.ID

	if id == uuid.Nil {
		id = uuid.New()
	}

	return base{
		id:   id,
		name: summary.Name,
		path: summary.Path,
		size: summary.Size,
		hash: summary.Hash,
	}
}
