package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestChapter_MissingForPublish(t *testing.T) {
	ch := &Chapter{Title: "Intro"}
	assert.Equal(t, []string{"description", "videoUrl"}, ch.MissingForPublish())
	assert.False(t, ch.CanPublish())

	ch.Description = strPtr("")
	ch.VideoURL = strPtr("https://cdn.test/v.mp4")
	assert.Equal(t, []string{"description"}, ch.MissingForPublish())

	ch.Description = strPtr("<p>hi</p>")
	assert.Empty(t, ch.MissingForPublish())
	assert.True(t, ch.CanPublish())
}

func TestCourse_MissingForPublish(t *testing.T) {
	c := &Course{Title: "Go"}
	assert.Equal(t, []string{"description", "imageUrl", "publishedChapter"}, c.MissingForPublish())

	c.Description = strPtr("desc")
	c.ImageURL = strPtr("https://cdn.test/c.png")
	c.Chapters = []*Chapter{{IsPublished: false}}
	assert.Equal(t, []string{"publishedChapter"}, c.MissingForPublish())
	assert.False(t, c.CanPublish())

	c.Chapters = append(c.Chapters, &Chapter{IsPublished: true})
	assert.True(t, c.HasPublishedChapter())
	assert.True(t, c.CanPublish())
}
