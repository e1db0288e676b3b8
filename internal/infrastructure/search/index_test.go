package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDocs() []Document {
	return []Document{
		{Kind: KindNews, ID: "n1", Slug: "kuai-wins-hackathon", Title: "KUAI wins national hackathon", Summary: "Students built a crop disease classifier", Date: "2024-05-02"},
		{Kind: KindEvent, ID: "e1", Slug: "intro-to-robotics", Title: "Intro to Robotics", Summary: "Hands-on robotics workshop", Body: "Bring a laptop"},
		{Kind: KindProject, ID: "p1", Slug: "crop-doctor", Title: "Crop Doctor", Summary: "Detecting crop disease from leaf photos"},
	}
}

func TestIndex_RebuildAndSearch(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.Rebuild(seedDocs()))

	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)

	hits, err := idx.Search("robotics", nil, 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, KindEvent, hits[0].Kind)
	assert.Equal(t, "e1", hits[0].ID)
	assert.Equal(t, "intro-to-robotics", hits[0].Slug)
}

func TestIndex_KindFilter(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()
	require.NoError(t, idx.Rebuild(seedDocs()))

	hits, err := idx.Search("crop", []string{KindProject}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "p1", hits[0].ID)
}

func TestIndex_UpsertRemove(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	doc := Document{Kind: KindIndabaxEvent, ID: "x1", Slug: "indabax-2025", Title: "Indabax Kabale 2025"}
	require.NoError(t, idx.Upsert(doc))

	hits, err := idx.Search("indabax", nil, 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	require.NoError(t, idx.Remove(KindIndabaxEvent, "x1"))
	hits, err = idx.Search("indabax", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_EmptyQuery(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	defer idx.Close()

	hits, err := idx.Search("   ", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
