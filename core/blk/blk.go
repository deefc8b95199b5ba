package blk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// RawExt is the extension of undecoded config files.
	RawExt = ".blk"
	// DecodedExt is the extension the decoder writes next to the raw file.
	DecodedExt = ".blkx"
)

var (
	// ErrMalformed is returned when a decoded file is not valid JSON.
	ErrMalformed = errors.New("malformed json")
	// ErrNotObject is returned when a root cannot be resolved to a single object.
	ErrNotObject = errors.New("root is not an object")
)

// Kind tags the shape of a decoded root.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindObjectList
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindObjectList:
		return "object_list"
	default:
		return "invalid"
	}
}

// Object is a JSON object that remembers the document order of its keys.
type Object struct {
	keys   []string
	fields map[string]any
}

// NewObject builds an Object from a plain map. Keys are sorted since maps carry no order.
func NewObject(m map[string]any) Object {
	o := Object{fields: make(map[string]any, len(m))}
	for k, v := range m {
		o.Set(k, v)
	}
	sort.Strings(o.keys)
	return o
}

// Keys returns the keys in document order.
func (o Object) Keys() []string {
	return o.keys
}

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Len returns the number of keys.
func (o Object) Len() int {
	return len(o.keys)
}

// Map exposes the underlying fields. Callers must not modify it.
func (o Object) Map() map[string]any {
	return o.fields
}

// Set stores value under key. A new key is appended; an existing key keeps its position.
func (o *Object) Set(key string, value any) {
	if o.fields == nil {
		o.fields = make(map[string]any)
	}
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Root is a decoded file root resolved to one of the known shapes.
type Root struct {
	Kind    Kind
	Objects []Object
}

// Object returns the canonical object for the root.
// An object list is merged in order, later elements overwriting earlier ones.
func (r Root) Object() (Object, error) {
	switch r.Kind {
	case KindObject:
		return r.Objects[0], nil
	case KindObjectList:
		var merged Object
		for _, obj := range r.Objects {
			for _, k := range obj.keys {
				merged.Set(k, obj.fields[k])
			}
		}
		if merged.fields == nil {
			merged.fields = map[string]any{}
		}
		return merged, nil
	default:
		return Object{}, ErrNotObject
	}
}

// Parse decodes data and classifies its root.
func Parse(data []byte) (Root, error) {
	if !gjson.ValidBytes(data) {
		return Root{}, ErrMalformed
	}

	res := gjson.ParseBytes(data)
	switch {
	case res.IsObject():
		return Root{Kind: KindObject, Objects: []Object{objectFrom(res)}}, nil
	case res.IsArray():
		elems := res.Array()
		objects := make([]Object, 0, len(elems))
		for _, e := range elems {
			if !e.IsObject() {
				return Root{Kind: KindInvalid}, nil
			}
			objects = append(objects, objectFrom(e))
		}
		if len(objects) == 1 {
			return Root{Kind: KindObject, Objects: objects}, nil
		}
		return Root{Kind: KindObjectList, Objects: objects}, nil
	default:
		return Root{Kind: KindInvalid}, nil
	}
}

// Decode parses data and resolves the root to a single object.
func Decode(data []byte) (Object, error) {
	root, err := Parse(data)
	if err != nil {
		return Object{}, err
	}
	return root.Object()
}

// ReadFile reads a decoded file and resolves its root to a single object.
func ReadFile(path string) (Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Object{}, err
	}
	obj, err := Decode(data)
	if err != nil {
		return Object{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return obj, nil
}

// Glob returns the files in dir with the given extension, sorted by name.
func Glob(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// Stem returns the file name without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DecodedPath returns the decoded sibling of a raw file.
func DecodedPath(rawPath string) string {
	return strings.TrimSuffix(rawPath, filepath.Ext(rawPath)) + DecodedExt
}

// RawName returns the raw file name a decoded file was produced from.
func RawName(decodedPath string) string {
	return Stem(decodedPath) + RawExt
}

func objectFrom(res gjson.Result) Object {
	var obj Object
	obj.fields = make(map[string]any)
	res.ForEach(func(key, value gjson.Result) bool {
		obj.Set(key.String(), value.Value())
		return true
	})
	return obj
}
