package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"/in/video.mp4", "/out/video-short.mp4"},
		{"/in/nested/dir/clip.mp4", "/out/clip-short.mp4"},
		{"/in/My Talk 2024.mp4", "/out/My Talk 2024-short.mp4"},
		{"/in/UPPER.MP4", "/out/UPPER-short.MP4"},
		{"/in/noext", "/out/noext-short"},
		{"/in/dot.in.name.mp4", "/out/dot.in.name-short.mp4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OutputPath(tc.source, "/out"), "source %s", tc.source)
	}
}

func TestBuildTasks(t *testing.T) {
	sources := []string{"/in/a.mp4", "/in/sub/b.mp4"}

	tasks := BuildTasks(sources, "/out")

	require.Len(t, tasks, 2)
	assert.Equal(t, Task{Source: "/in/a.mp4", Dest: "/out/a-short.mp4"}, tasks[0])
	assert.Equal(t, Task{Source: "/in/sub/b.mp4", Dest: "/out/b-short.mp4"}, tasks[1])
}

func TestBuildTasks_Empty(t *testing.T) {
	assert.Empty(t, BuildTasks(nil, "/out"))
}

func TestTaskName(t *testing.T) {
	task := Task{Source: "/in/sub/clip.mp4"}
	assert.Equal(t, "clip.mp4", task.Name())
}
