package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
)

// docDTO is the storage shape of a document. The same struct decodes YAML
// collection files and the JSON snapshot kept in Redis (JSON is valid YAML).
type docDTO struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Category string   `yaml:"category" json:"category"`
	Content  string   `yaml:"content" json:"content"`
	Tags     []string `yaml:"tags" json:"tags"`
	Created  string   `yaml:"created" json:"created"`
	Updated  string   `yaml:"updated" json:"updated"`
}

// collectionDTO wraps the document list in collection files.
type collectionDTO struct {
	Documents []docDTO `yaml:"documents" json:"documents"`
}

func (d docDTO) toDomain() (domdoc.Document, error) {
	doc, err := domdoc.New(d.ID, d.Title, d.Category, d.Content, d.Tags, d.Created, d.Updated)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("document %q: %w", d.ID, err)
	}
	return doc, nil
}

func fromDomain(doc *domdoc.Document) docDTO {
	tags := doc.Tags()
	if tags == nil {
		tags = []string{}
	}
	return docDTO{
		ID:       doc.ID(),
		Title:    doc.Title(),
		Category: doc.Category(),
		Content:  doc.Content(),
		Tags:     tags,
		Created:  doc.Created(),
		Updated:  doc.Updated(),
	}
}

// decodeCollection parses YAML or JSON holding either a bare document list or
// a {documents: [...]} wrapper.
func decodeCollection(data []byte) ([]domdoc.Document, error) {
	var list []docDTO
	if err := yaml.Unmarshal(data, &list); err != nil {
		var wrapped collectionDTO
		if werr := yaml.Unmarshal(data, &wrapped); werr != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		list = wrapped.Documents
	}

	docs := make([]domdoc.Document, 0, len(list))
	for _, d := range list {
		doc, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
