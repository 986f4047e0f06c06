// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhatlepham/inkwell/pkg/slug"
)

/*
TestSlug_From verifies the full normalization pipeline.
*/
func TestSlug_From(t *testing.T) {
	cases := map[string]string{
		"Web Development":       "web-development",
		"Café Culture":          "cafe-culture",
		"  system   design!!  ": "system-design",
		"Go 1.24: What's New?":  "go-1-24-what-s-new",
		"already-a-slug":        "already-a-slug",
		"":                      "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, slug.From(input), "input: %q", input)
	}
}
