package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olivere/elastic"
)

const (
	esDocType = "_doc"

	// Values are opaque JSON strings; nothing inside them is indexed.
	esIndexMapping = `{
		"mappings": {
			"_doc": {
				"properties": {
					"value": {"type": "text", "index": false}
				}
			}
		}
	}`
)

type esDocument struct {
	Value string `json:"value"`
}

// ElasticsearchStore keeps every key as one document of a single index.
type ElasticsearchStore struct {
	client *elastic.Client
	index  string
}

func NewElasticsearchStore(ctx context.Context, url, index string) (*ElasticsearchStore, error) {
	client, err := elastic.NewClient(
		elastic.SetSniff(false),
		elastic.SetURL(url),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check index %s: %w", index, err)
	}
	if !exists {
		if _, err := client.CreateIndex(index).BodyString(esIndexMapping).Do(ctx); err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", index, err)
		}
	}

	return &ElasticsearchStore{client: client, index: index}, nil
}

func (s *ElasticsearchStore) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.client.Get().
		Index(s.index).
		Type(esDocType).
		Id(key).
		Do(ctx)
	if err != nil {
		if elastic.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	if !res.Found || res.Source == nil {
		return nil, ErrNotFound
	}

	var doc esDocument
	if err := json.Unmarshal(*res.Source, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode key %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (s *ElasticsearchStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.Index().
		Index(s.index).
		Type(esDocType).
		Id(key).
		BodyJson(esDocument{Value: string(value)}).
		Refresh("true").
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *ElasticsearchStore) Remove(ctx context.Context, key string) error {
	_, err := s.client.Delete().
		Index(s.index).
		Type(esDocType).
		Id(key).
		Refresh("true").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}
