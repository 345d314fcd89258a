package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dial-cli/internal/model"
)

func sample() model.Forest {
	return model.Forest{
		{ID: "1", Title: "Root", Status: model.StatusInProgress, Priority: model.PriorityHigh, Tags: []string{"work"}, Children: []*model.Task{
			{ID: "2", Title: "First", ParentID: "1"},
			{ID: "3", Title: "Second", ParentID: "1", Status: model.StatusCompleted},
		}},
		{ID: "4", Title: "Other", Priority: model.PriorityUrgent},
	}
}

func TestWrite_JSONIsStrict(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), "json", false))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))

	var back []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, "InProgress", back[0]["status"])
	require.Equal(t, "High", back[0]["priority"])
}

func TestWrite_Tree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), "tree", false))
	want := strings.Join([]string{
		"- [doing] Root [High] #work (1)",
		"  - [todo] First [Low] (2)",
		"  - [done] Second [Low] (3)",
		"- [todo] Other [Urgent] (4)",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestWrite_TreePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, sample(), true))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"├─ [doing] Root [High] #work (1)",
		"│  ├─ [todo] First [Low] (2)",
		"│  └─ [done] Second [Low] (3)",
		"└─ [todo] Other [Urgent] (4)",
	}, lines)
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Write(&buf, map[string]int{"a": 1}, "tree", false))
	require.Error(t, Write(&buf, sample(), "edn", false))
}
