package storage

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// Memory is a thread-safe in-process Storage. It can be dumped to and restored from a JSON file
// so carts survive a restart without a database.
type Memory struct {
	m sync.Map // map[string]string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.m.Load(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (s *Memory) Set(_ context.Context, key, value string) error {
	s.m.Store(key, value)
	return nil
}

func (s *Memory) Remove(_ context.Context, key string) error {
	s.m.Delete(key)
	return nil
}

// Keys returns all keys in sorted order.
func (s *Memory) Keys() []string {
	var keys []string
	s.m.Range(func(k, _ interface{}) bool {
		keys = append(keys, k.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// DumpToFile saves all key-values to a file as JSON.
func (s *Memory) DumpToFile(filename string) error {
	m := make(map[string]string)
	s.m.Range(func(k, v interface{}) bool {
		m[k.(string)] = v.(string)
		return true
	})
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// RestoreFromFile loads key-values from a file written by DumpToFile.
func (s *Memory) RestoreFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, v := range m {
		s.m.Store(k, v)
	}
	return nil
}
