package modify

import (
	"strconv"
	"time"

	"github.com/taskline-go/taskline/task"
)

// Keys of the task map. Tags, dependencies and annotations are stored as
// prefixed keys with per-item suffixes; timestamps are unix seconds in
// decimal.
const (
	KeyDescription = "description"
	KeyStatus      = "status"
	KeyWait        = "wait"
	KeyStart       = "start"
	KeyModified    = "modified"

	TagPrefix        = "tag_"
	DepPrefix        = "dep_"
	AnnotationPrefix = "annotation_"
)

// Apply returns a copy of kv with the modification applied, using the key
// scheme above. The input map is not mutated. The "modified" entry is
// refreshed on every call, empty modifications included.
func (m Modification) Apply(kv task.KV, now time.Time) task.KV {
	out := kv.Clone()
	if m.SetDescription {
		out.Set(KeyDescription, m.Description)
	}
	if m.Status != nil {
		out.Set(KeyStatus, m.Status.String())
	}
	if m.WaitChanged {
		if m.Wait != nil {
			out.Set(KeyWait, unixSeconds(*m.Wait))
		} else {
			out.Delete(KeyWait)
		}
	}
	if m.Active != nil {
		if *m.Active {
			out.Set(KeyStart, unixSeconds(now))
		} else {
			out.Delete(KeyStart)
		}
	}
	for tag := range m.AddTags {
		out.Set(TagPrefix+tag.String(), "")
	}
	for tag := range m.RemoveTags {
		out.Delete(TagPrefix + tag.String())
	}
	for key := range m.AddDeps {
		out.Set(DepPrefix+key, "")
	}
	for key := range m.RemoveDeps {
		out.Delete(DepPrefix + key)
	}
	if m.Annotation != "" {
		out.Set(AnnotationPrefix+unixSeconds(now), m.Annotation)
	}
	out.Set(KeyModified, unixSeconds(now))
	return out
}

func unixSeconds(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
