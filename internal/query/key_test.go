package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStructuralEquality(t *testing.T) {
	t.Parallel()

	a := K("courses", "abc", "lessons")
	b := K("courses", "abc", "lessons")
	c := K("courses", "abc")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.String(), c.String())
}

func TestKeyHasPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		key    Key
		prefix Key
		want   bool
	}{
		{name: "exact match", key: K("courses", "abc"), prefix: K("courses", "abc"), want: true},
		{name: "proper prefix", key: K("courses", "abc", "lessons"), prefix: K("courses", "abc"), want: true},
		{name: "family prefix", key: K("courses", "abc"), prefix: K("courses"), want: true},
		{name: "empty prefix matches everything", key: K("courses"), prefix: K(), want: true},
		{name: "diverging part", key: K("courses", "abc"), prefix: K("courses", "xyz"), want: false},
		{name: "prefix longer than key", key: K("courses"), prefix: K("courses", "abc"), want: false},
		{name: "different family", key: K("users", "abc"), prefix: K("courses"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.key.HasPrefix(tc.prefix))
		})
	}
}

func TestKeyFamily(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "courses", K("courses", "abc").Family())
	assert.Equal(t, "", K().Family())
}

func TestKeyPartsDoNotCollideAcrossBoundaries(t *testing.T) {
	t.Parallel()

	// ["ab", "c"] and ["a", "bc"] must canonicalize differently.
	assert.NotEqual(t, K("ab", "c").String(), K("a", "bc").String())
}
