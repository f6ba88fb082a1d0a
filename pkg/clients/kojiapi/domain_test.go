package kojiapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepestTasks(t *testing.T) {

	t.Run("ReturnsSingleDeepestLeaf", func(t *testing.T) {

		tree := TaskTree{
			"100": []Task{
				{ID: 200, Method: "buildSRPMFromSCM", Arch: "noarch"},
				{ID: 300, Method: "rebuildSRPM", Arch: "noarch"},
			},
			"200": []Task{},
			"300": []Task{
				{ID: 400, Method: "buildArch", Arch: "x86_64"},
			},
			"400": []Task{},
		}

		// act
		tasks := tree.DeepestTasks(100)

		assert.Equal(t, 1, len(tasks))
		assert.Equal(t, int64(400), tasks[0].ID)
		assert.Equal(t, "buildArch", tasks[0].Method)
	})

	t.Run("ReturnsAllLeavesAtEqualMaxDepth", func(t *testing.T) {

		tree := TaskTree{
			"100": []Task{
				{ID: 200, Method: "buildArch", Arch: "x86_64"},
				{ID: 300, Method: "buildArch", Arch: "aarch64"},
			},
			"200": []Task{},
			"300": []Task{},
		}

		// act
		tasks := tree.DeepestTasks(100)

		assert.Equal(t, 2, len(tasks))
	})

	t.Run("SkipsShallowLeavesWhenDeeperBranchExists", func(t *testing.T) {

		tree := TaskTree{
			"100": []Task{
				{ID: 200, Method: "tagBuild", Arch: "noarch"},
				{ID: 300, Method: "build", Arch: "noarch"},
			},
			"200": []Task{},
			"300": []Task{
				{ID: 400, Method: "buildArch", Arch: "x86_64"},
			},
			"400": []Task{},
		}

		// act
		tasks := tree.DeepestTasks(100)

		assert.Equal(t, 1, len(tasks))
		assert.Equal(t, int64(400), tasks[0].ID)
	})

	t.Run("ReturnsEmptySliceForTaskWithoutDescendants", func(t *testing.T) {

		tree := TaskTree{
			"100": []Task{},
		}

		// act
		tasks := tree.DeepestTasks(100)

		assert.Empty(t, tasks)
	})

	t.Run("ReturnsEmptySliceForUnknownRoot", func(t *testing.T) {

		tree := TaskTree{}

		// act
		tasks := tree.DeepestTasks(100)

		assert.Empty(t, tasks)
	})
}
