package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajtatum/BabouExtensions/pkg/enum"
)

type status int

const (
	draft status = iota
	inReview
	published
	archived
)

func newRegistry(t *testing.T) *enum.Registry[status] {
	t.Helper()

	r, err := enum.New(
		enum.Entry[status]{Value: draft, Name: "Draft"},
		enum.Entry[status]{Value: inReview, Name: "InReview", Display: "In review", Description: "Waiting for an editor"},
		enum.Entry[status]{Value: published, Name: "Published", Description: "Visible to everyone"},
	)
	require.NoError(t, err)
	return r
}

func TestRegistryLookups(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	assert.Equal(t, "InReview", r.Name(inReview))
	assert.Equal(t, "In review", r.DisplayName(inReview))
	assert.Equal(t, "Draft", r.DisplayName(draft), "display falls back to name")
	assert.Equal(t, "Visible to everyone", r.Description(published))
	assert.Equal(t, "Draft", r.Description(draft), "description falls back to name")

	assert.True(t, r.Contains(published))
	assert.False(t, r.Contains(archived))
	assert.Empty(t, r.Name(archived))
	assert.Empty(t, r.DisplayName(archived))
	assert.Empty(t, r.Description(archived))
}

func TestRegistryReverseLookups(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	v, err := r.FromDisplayName("In review")
	require.NoError(t, err)
	assert.Equal(t, inReview, v)

	v, err = r.FromDisplayName("Draft")
	require.NoError(t, err)
	assert.Equal(t, draft, v)

	_, err = r.FromDisplayName("in review")
	require.ErrorIs(t, err, enum.ErrUnknownValue, "display lookup is exact")

	v, err = r.FromDescription("Visible to everyone")
	require.NoError(t, err)
	assert.Equal(t, published, v)

	v, err = r.FromDescription("Draft")
	require.NoError(t, err)
	assert.Equal(t, draft, v, "entries without description match on name")

	_, err = r.FromDescription("Nope")
	require.ErrorIs(t, err, enum.ErrUnknownValue)
}

func TestRegistryParse(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	tests := []struct {
		name       string
		input      string
		ignoreCase bool
		expected   status
		wantErr    bool
	}{
		{name: "exact", input: "Published", expected: published},
		{name: "trimmed", input: "  Draft ", expected: draft},
		{name: "case mismatch", input: "published", wantErr: true},
		{name: "ignore case", input: "inreview", ignoreCase: true, expected: inReview},
		{name: "display label is not a name", input: "In review", ignoreCase: true, wantErr: true},
		{name: "unknown", input: "Deleted", ignoreCase: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := r.Parse(tt.input, tt.ignoreCase)
			if tt.wantErr {
				require.ErrorIs(t, err, enum.ErrUnknownValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRegistryParseOr(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	assert.Equal(t, published, r.ParseOr("PUBLISHED", draft))
	assert.Equal(t, inReview, r.ParseOr("", inReview))
	assert.Equal(t, inReview, r.ParseOr("   ", inReview))
	assert.Equal(t, draft, r.ParseOr("unknown", draft))
}

func TestRegistryLists(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)

	assert.Equal(t, []status{draft, inReview, published}, r.Values())
	assert.Equal(t, []string{"Draft", "InReview", "Published"}, r.Names())
	assert.Equal(t, []string{"Draft", "In review", "Published"}, r.DisplayNames())
	assert.Equal(t, []string{"Draft", "Waiting for an editor", "Visible to everyone"}, r.Descriptions())
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := enum.New(
		enum.Entry[string]{Value: "a", Name: "A"},
		enum.Entry[string]{Value: "a", Name: "Other"},
	)
	require.ErrorIs(t, err, enum.ErrDuplicateValue)

	_, err = enum.New(
		enum.Entry[string]{Value: "a", Name: "A"},
		enum.Entry[string]{Value: "b", Name: "A"},
	)
	require.ErrorIs(t, err, enum.ErrDuplicateName)

	_, err = enum.New(enum.Entry[string]{Value: "a"})
	require.ErrorIs(t, err, enum.ErrEmptyName)

	empty, err := enum.New[int]()
	require.NoError(t, err)
	assert.Empty(t, empty.Values())

	assert.Panics(t, func() {
		enum.MustNew(
			enum.Entry[int]{Value: 1, Name: "One"},
			enum.Entry[int]{Value: 1, Name: "Uno"},
		)
	})
}
