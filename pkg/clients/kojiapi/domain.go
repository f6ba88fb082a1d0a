package kojiapi

import (
	"strconv"
)

// BuildStateComplete is the koji build state of successfully completed builds
const BuildStateComplete = 1

// Build represents a single build row returned by the listBuilds endpoint
type Build struct {
	BuildID        int64    `xmlrpc:"build_id"`
	Name           string   `xmlrpc:"name"`
	Version        string   `xmlrpc:"version"`
	Release        string   `xmlrpc:"release"`
	Epoch          *int64   `xmlrpc:"epoch"`
	NVR            string   `xmlrpc:"nvr"`
	TaskID         int64    `xmlrpc:"task_id"`
	State          int      `xmlrpc:"state"`
	StartTime      *float64 `xmlrpc:"start_ts"`
	CompletionTime *float64 `xmlrpc:"completion_ts"`
}

// Task represents a single task row returned by the getTaskDescendents endpoint
type Task struct {
	ID         int64    `xmlrpc:"id"`
	Method     string   `xmlrpc:"method"`
	Arch       string   `xmlrpc:"arch"`
	State      int      `xmlrpc:"state"`
	Parent     *int64   `xmlrpc:"parent"`
	CreateTime *float64 `xmlrpc:"create_ts"`
}

// TaskTree is the descendant tree of a build task as returned by
// getTaskDescendents; every task in the tree appears as a key (the task id in
// decimal string form, an xml-rpc struct limitation) mapping to its direct
// children, leaves map to an empty list
type TaskTree map[string][]Task

// DeepestTasks returns the tasks furthest down the descendant tree of the given
// root task; when several branches reach the same depth all of their leaves are
// returned. A tree without descendants returns an empty slice.
func (t TaskTree) DeepestTasks(rootTaskID int64) (tasks []Task) {

	type frame struct {
		task  Task
		depth int
	}

	queue := []frame{}
	for _, child := range t[strconv.FormatInt(rootTaskID, 10)] {
		queue = append(queue, frame{task: child, depth: 1})
	}

	maxDepth := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children := t[strconv.FormatInt(current.task.ID, 10)]
		if len(children) == 0 {
			// queue is processed in breadth-first order, so depth never decreases
			if current.depth > maxDepth {
				maxDepth = current.depth
				tasks = []Task{current.task}
			} else if current.depth == maxDepth {
				tasks = append(tasks, current.task)
			}
			continue
		}

		for _, child := range children {
			queue = append(queue, frame{task: child, depth: current.depth + 1})
		}
	}

	return
}
