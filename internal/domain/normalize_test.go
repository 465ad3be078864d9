package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleMemberIDs(t *testing.T) {
	tests := []struct {
		name   string
		circle Circle
		want   []string
	}{
		{
			name:   "users only",
			circle: Circle{Users: []string{"u1", "u2"}},
			want:   []string{"u1", "u2"},
		},
		{
			name: "members only",
			circle: Circle{Members: []CircleMember{
				{UserID: "u3"},
				{UserID: "u4"},
			}},
			want: []string{"u3", "u4"},
		},
		{
			name: "overlapping union keeps first occurrence",
			circle: Circle{
				Users: []string{"u1", "u2"},
				Members: []CircleMember{
					{UserID: "u2"},
					{UserID: "u3"},
				},
			},
			want: []string{"u1", "u2", "u3"},
		},
		{
			name: "empty ids dropped",
			circle: Circle{
				Users:   []string{"", "u1"},
				Members: []CircleMember{{UserID: ""}},
			},
			want: []string{"u1"},
		},
		{
			name:   "no members",
			circle: Circle{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.circle.MemberIDs())
		})
	}
}

func TestCircleHasMember(t *testing.T) {
	c := Circle{
		Users:   []string{"u1"},
		Members: []CircleMember{{UserID: "u2"}},
	}
	assert.True(t, c.HasMember("u1"))
	assert.True(t, c.HasMember("u2"))
	assert.False(t, c.HasMember("u3"))
	assert.False(t, c.HasMember(""))
}

func TestTripIsMember(t *testing.T) {
	trip := Trip{MemberIDs: []string{"a", "b"}}
	assert.True(t, trip.IsMember("a"))
	assert.False(t, trip.IsMember("c"))
	assert.False(t, trip.IsMember(""))
}

func TestTripListUnmarshal(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		var l TripList
		require.NoError(t, json.Unmarshal([]byte(`[{"id":"t1"},{"id":"t2"}]`), &l))
		require.Len(t, l, 2)
		assert.Equal(t, "t1", l[0].ID)
	})

	t.Run("wrapped object", func(t *testing.T) {
		var l TripList
		require.NoError(t, json.Unmarshal([]byte(`{"trips":[{"id":"t3"}]}`), &l))
		require.Len(t, l, 1)
		assert.Equal(t, "t3", l[0].ID)
	})

	t.Run("object without trips key", func(t *testing.T) {
		var l TripList
		require.NoError(t, json.Unmarshal([]byte(`{"count":0}`), &l))
		assert.Empty(t, l)
	})

	t.Run("malformed", func(t *testing.T) {
		var l TripList
		assert.Error(t, json.Unmarshal([]byte(`"nope`), &l))
	})
}

func TestCircleListUnmarshal(t *testing.T) {
	var fromArray CircleList
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"c1"}]`), &fromArray))
	require.Len(t, fromArray, 1)

	var fromObject CircleList
	require.NoError(t, json.Unmarshal([]byte(`{"circles":[{"id":"c2"},{"id":"c3"}]}`), &fromObject))
	require.Len(t, fromObject, 2)
	assert.Equal(t, "c3", fromObject[1].ID)
}
