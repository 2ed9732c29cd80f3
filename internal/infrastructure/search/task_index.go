// Package search keeps an Elasticsearch copy of tasks for full-text lookup.
// The Record Store stays authoritative; hits are resolved back through it.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

const defaultTimeout = 3 * time.Second

type TaskIndex struct {
	ES      *elasticsearch.Client
	Index   string
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewTaskIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *TaskIndex {
	return &TaskIndex{ES: es, Index: index, Logger: logger, Timeout: defaultTimeout}
}

var taskMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"id":          map[string]any{"type": "keyword"},
			"user_id":     map[string]any{"type": "keyword"},
			"subject":     map[string]any{"type": "text"},
			"title":       map[string]any{"type": "text"},
			"description": map[string]any{"type": "text"},
			"priority":    map[string]any{"type": "keyword"},
			"status":      map[string]any{"type": "keyword"},
			"deadline":    map[string]any{"type": "date"},
		},
	},
}

// EnsureIndex creates the index with keyword owner ids when it does not exist yet.
func (x *TaskIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, x.timeout())
	defer cancel()
	res, err := esapi.IndicesExistsRequest{Index: []string{x.Index}}.Do(c, x.ES)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}
	b, _ := json.Marshal(taskMapping)
	res, err = esapi.IndicesCreateRequest{Index: x.Index, Body: bytes.NewReader(b)}.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", x.Index, res.Status())
	}
	return nil
}

func taskDocument(t *entity.Task) map[string]any {
	doc := map[string]any{
		"id":       t.ID,
		"user_id":  t.UserID,
		"subject":  t.Subject,
		"title":    t.Title,
		"priority": string(t.Priority),
		"status":   string(t.Status),
		"deadline": t.Deadline.UTC().Format(time.RFC3339Nano),
	}
	if t.Description != nil {
		doc["description"] = *t.Description
	}
	return doc
}

func (x *TaskIndex) IndexTask(ctx context.Context, t *entity.Task) error {
	b, err := json.Marshal(taskDocument(t))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.Index, DocumentID: t.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, x.timeout())
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index task %s: %s", t.ID, res.Status())
	}
	return nil
}

func (x *TaskIndex) DeleteTask(ctx context.Context, id string) error {
	c, cancel := context.WithTimeout(ctx, x.timeout())
	defer cancel()
	res, err := esapi.DeleteRequest{Index: x.Index, DocumentID: id}.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete task %s: %s", id, res.Status())
	}
	return nil
}

// searchQuery matches q against the text fields and filters on the owner.
func searchQuery(ownerID, q string, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "subject", "description"},
					},
				},
				"filter": []any{
					map[string]any{"term": map[string]any{"user_id": ownerID}},
				},
			},
		},
		"size":    size,
		"_source": false,
	}
}

func (x *TaskIndex) SearchTaskIDs(ctx context.Context, ownerID, q string, size int) ([]string, error) {
	if strings.TrimSpace(q) == "" {
		return []string{}, nil
	}
	b, _ := json.Marshal(searchQuery(ownerID, q, size))

	c, cancel := context.WithTimeout(ctx, x.timeout())
	defer cancel()

	res, err := x.ES.Search(x.ES.Search.WithContext(c), x.ES.Search.WithIndex(x.Index), x.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search tasks: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.ID)
	}
	return out, nil
}

func (x *TaskIndex) timeout() time.Duration {
	if x.Timeout > 0 {
		return x.Timeout
	}
	return defaultTimeout
}
