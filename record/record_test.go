package record

import (
	"crypto/sha256"
	"dedup-tools/crypto"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func digestOf(s string) crypto.Digest {
	return crypto.Digest(sha256.Sum256([]byte(s)))
}

func testHasher(t *testing.T) *crypto.Hasher {
	hasher, err := crypto.NewHasher(crypto.SHA256)
	require.NoError(t, err)
	return hasher
}

// root
// ├── a.txt (10)
// ├── x
// │   └── f1 (10)
// └── y
//     ├── f1copy (10)
//     └── z
//         └── empty (0)
func exampleTree() *DirectoryRecord {
	root := NewDirectoryRecord("root", "/root")
	root.AddFile(NewFileRecord("a.txt", "/root/a.txt", 10, digestOf("a")))

	x := NewDirectoryRecord("x", "/root/x")
	x.AddFile(NewFileRecord("f1", "/root/x/f1", 10, digestOf("H")))
	root.AddDirectory(x)

	y := NewDirectoryRecord("y", "/root/y")
	y.AddFile(NewFileRecord("f1copy", "/root/y/f1copy", 10, digestOf("H")))
	z := NewDirectoryRecord("z", "/root/y/z")
	z.AddFile(NewFileRecord("empty", "/root/y/z/empty", 0, digestOf("")))
	y.AddDirectory(z)
	root.AddDirectory(y)

	return root
}

func TestGroupIDPadsSize(t *testing.T) {
	groupID := GroupID(digestOf("H"), 21)

	assert.True(t, strings.HasPrefix(groupID, digestOf("H").Hex()+"-"))
	assert.True(t, strings.HasSuffix(groupID, "-000000000000021"))
	assert.Len(t, groupID, 64+1+SizeDigits)
}

func TestGroupIDNeverCollidesAcrossPaddingBoundary(t *testing.T) {
	assert.NotEqual(t, GroupID(digestOf("H"), 1), GroupID(digestOf("H"), 21))
	assert.NotEqual(t, GroupID(digestOf("H"), 12), GroupID(digestOf("H"), 120))
	assert.Less(t, GroupID(digestOf("H"), 9), GroupID(digestOf("H"), 10))
}

func TestGroupIDEqualityIsHashAndSizeEquality(t *testing.T) {
	a := NewFileRecord("a", "/a", 10, digestOf("H"))
	b := NewFileRecord("b", "/other/b", 10, digestOf("H"))
	c := NewFileRecord("c", "/c", 11, digestOf("H"))
	d := NewFileRecord("d", "/d", 10, digestOf("I"))

	assert.Equal(t, a.GroupID(), b.GroupID())
	assert.NotEqual(t, a.GroupID(), c.GroupID())
	assert.NotEqual(t, a.GroupID(), d.GroupID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestUpdateComputesSizeAndHash(t *testing.T) {
	hasher := testHasher(t)
	root := exampleTree()
	root.Update(hasher)

	x := root.Directories()[0]
	y := root.Directories()[1]
	z := y.Directories()[0]

	assert.Equal(t, int64(0), z.Size())
	assert.Equal(t, int64(10), x.Size())
	assert.Equal(t, int64(10), y.Size())
	assert.Equal(t, int64(30), root.Size())

	assert.Equal(t, hasher.HashDigests([]crypto.Digest{digestOf("H")}), x.Hash())
	assert.Equal(t, hasher.HashDigests([]crypto.Digest{digestOf("H"), z.Hash()}), y.Hash())
	assert.Equal(t, hasher.HashDigests([]crypto.Digest{digestOf("a"), x.Hash(), y.Hash()}), root.Hash())
}

func TestUpdateIsIdempotent(t *testing.T) {
	hasher := testHasher(t)
	root := exampleTree()

	root.Update(hasher)
	size, hash := root.Size(), root.Hash()

	root.Update(hasher)
	assert.Equal(t, size, root.Size())
	assert.Equal(t, hash, root.Hash())
}

func TestUpdateIsOrderSensitive(t *testing.T) {
	hasher := testHasher(t)

	first := NewDirectoryRecord("d", "/first")
	first.AddFile(NewFileRecord("a", "/first/a", 1, digestOf("a")))
	first.AddFile(NewFileRecord("b", "/first/b", 1, digestOf("b")))

	second := NewDirectoryRecord("d", "/second")
	second.AddFile(NewFileRecord("b", "/second/b", 1, digestOf("b")))
	second.AddFile(NewFileRecord("a", "/second/a", 1, digestOf("a")))

	first.Update(hasher)
	second.Update(hasher)

	assert.Equal(t, first.Size(), second.Size())
	assert.NotEqual(t, first.GroupID(), second.GroupID())
}

func TestFlatDirectoriesVisitsParentsFirst(t *testing.T) {
	root := exampleTree()

	assert.Equal(t, []string{"/root", "/root/x", "/root/y", "/root/y/z"}, Paths(root.FlatDirectories()))
}

func TestFlatFiles(t *testing.T) {
	root := exampleTree()

	assert.Equal(t, []string{"/root/a.txt", "/root/x/f1", "/root/y/f1copy", "/root/y/z/empty"}, Paths(root.FlatFiles()))
	assert.Empty(t, NewDirectoryRecord("e", "/e").FlatFiles())
}

func TestWalkCanSkipChildren(t *testing.T) {
	root := exampleTree()
	var visited []string

	root.Walk(func(d *DirectoryRecord) bool {
		visited = append(visited, d.Path())
		return d.Name() != "y"
	})

	assert.Equal(t, []string{"/root", "/root/x", "/root/y"}, visited)
}

func TestNonEmptyAndFilter(t *testing.T) {
	root := exampleTree()
	files := NonEmpty(root.FlatFiles())

	assert.Len(t, files, 3)

	filtered := Filter(files, func(f *FileRecord) bool {
		return f.Name() != "a.txt"
	})
	assert.Equal(t, []string{"/root/x/f1", "/root/y/f1copy"}, Paths(filtered))
	assert.Len(t, Filter(files, nil), 3)
}

func TestGroupsKeepFirstAppearanceOrder(t *testing.T) {
	root := exampleTree()
	groups := Groups(root.FlatFiles())

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"/root/a.txt"}, Paths(groups[0].Members))
	assert.Equal(t, []string{"/root/x/f1", "/root/y/f1copy"}, Paths(groups[1].Members))
	assert.Equal(t, []string{"/root/y/z/empty"}, Paths(groups[2].Members))

	index := IndexByGroupID(root.FlatFiles())
	assert.Len(t, index[groups[1].ID], 2)
}

func TestDocumentRoundTrip(t *testing.T) {
	root := exampleTree()
	root.Update(testHasher(t))

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var loaded DirectoryRecord
	require.NoError(t, json.Unmarshal(data, &loaded))

	again, err := json.Marshal(&loaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	assert.Equal(t, root.ID(), loaded.ID())
	assert.Equal(t, root.GroupID(), loaded.GroupID())
	assert.Equal(t, Paths(root.FlatFiles()), Paths(loaded.FlatFiles()))
	assert.Equal(t, root.FlatFiles()[1].ID(), loaded.FlatFiles()[1].ID())
}

func TestDocumentFields(t *testing.T) {
	root := NewDirectoryRecord("root", "/root")
	root.AddFile(NewFileRecord("f", "/root/f", 3, digestOf("f")))
	root.Update(testHasher(t))

	data, err := json.Marshal(root)
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(data, &document))

	assert.ElementsMatch(t, []string{"id", "name", "path", "size", "hash", "directories", "files"}, keys(document))
	assert.Equal(t, root.Hash().Hex(), document["hash"])
	assert.Equal(t, []any{}, document["directories"])

	file := document["files"].([]any)[0].(map[string]any)
	assert.ElementsMatch(t, []string{"id", "name", "path", "size", "hash"}, keys(file))
	assert.Equal(t, float64(3), file["size"])
}

func TestDocumentWithoutIDGetsOne(t *testing.T) {
	var loaded DirectoryRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"r","path":"/r","size":0,"hash":"`+digestOf("").Hex()+`","directories":[],"files":[]}`), &loaded))

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", loaded.ID().String())
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
