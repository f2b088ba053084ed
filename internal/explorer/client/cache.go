package client

import (
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

var submodelBucket = []byte("submodels")

// Cache is an on-disk read-through store for submodel bodies. Submodel
// content in the repository is close to static, so a byte-for-byte copy of
// the upstream message spares the repository repeated deep fetches during
// tree expansion.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(submodelBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("💾 Submodel cache open at %s", path)
	return &Cache{db: db}, nil
}

// Get returns the cached body for a submodel id, or nil.
func (c *Cache) Get(id string) []byte {
	var body []byte
	_ = c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(submodelBucket).Get([]byte(id)); v != nil {
			body = make([]byte, len(v))
			copy(body, v)
		}
		return nil
	})
	return body
}

// Put stores the body for a submodel id.
func (c *Cache) Put(id string, body []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(submodelBucket).Put([]byte(id), body)
	})
}

// Delete removes one entry.
func (c *Cache) Delete(id string) {
	_ = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(submodelBucket).Delete([]byte(id))
	})
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
