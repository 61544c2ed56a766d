package restclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{name: "nil params", params: nil, want: ""},
		{name: "empty params", params: Params{}, want: ""},
		{
			name:   "omits nil and empty values",
			params: Params{"a": "", "b": nil, "c": "x"},
			want:   "c=x",
		},
		{
			name:   "repeated keys for slices",
			params: Params{"id": []int{5, 7}},
			want:   "id=5&id=7",
		},
		{
			name:   "string slice drops empty elements",
			params: Params{"tag": []string{"go", "", "http"}},
			want:   "tag=go&tag=http",
		},
		{
			name:   "numbers and booleans",
			params: Params{"page": 3, "archived": false, "limit": int64(25)},
			want:   "archived=false&limit=25&page=3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.params.Encode())
		})
	}
}

func TestPageParams(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", PageParams(1, 0).Encode())
	assert.Equal(t, "page=2&pageSize=25", PageParams(2, 25).Encode())
	assert.Equal(t, "pageSize=10", PageParams(0, 10).Encode())
}

func TestParamsMerge(t *testing.T) {
	t.Parallel()

	base := Params{"page": 1, "status": "draft"}
	merged := base.Merge(Params{"status": "published", "q": "go"})

	assert.Equal(t, "published", merged["status"])
	assert.Equal(t, "go", merged["q"])
	assert.Equal(t, 1, merged["page"])
	// The receiver is not mutated.
	assert.Equal(t, "draft", base["status"])
}
