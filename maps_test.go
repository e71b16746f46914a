package weetools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	weetools "github.com/dracory/weetools"
)

func TestSnakeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "nil map",
			in:   nil,
			want: nil,
		},
		{
			name: "camel and kebab keys",
			in:   map[string]any{"FirstName": "Jo", "last-name": "Doe", "Age": 7},
			want: map[string]any{"first_name": "Jo", "last_name": "Doe", "age": 7},
		},
		{
			name: "nested maps and slices",
			in: map[string]any{
				"UserInfo": map[string]any{"HomeAddress": "x"},
				"Tags":     []any{map[string]any{"TagName": "y"}, "plain"},
			},
			want: map[string]any{
				"user_info": map[string]any{"home_address": "x"},
				"tags":      []any{map[string]any{"tag_name": "y"}, "plain"},
			},
		},
		{
			name: "already snake",
			in:   map[string]any{"created_at": 1},
			want: map[string]any{"created_at": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weetools.SnakeKeys(tt.in))
		})
	}
}

func TestFlattenErrors(t *testing.T) {
	in := map[string]any{
		"title": []any{"can't be blank", "is too short"},
		"author": map[string]any{
			"email": "has invalid format",
		},
		"tags": map[string]any{
			"message": "should have at least %{count} item(s)",
			"count":   1,
		},
	}

	got := weetools.FlattenErrors(in)

	assert.Equal(t, map[string][]string{
		"title":        {"can't be blank", "is too short"},
		"author.email": {"has invalid format"},
		"tags":         {"should have at least 1 item(s)"},
	}, got)
}

func TestFlattenErrors_Empty(t *testing.T) {
	assert.Empty(t, weetools.FlattenErrors(map[string]any{}))
}
