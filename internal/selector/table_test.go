package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGroups returns groups that append their name to calls when run.
func recordingGroups(calls *[]string, names ...string) []Group {
	groups := make([]Group, len(names))
	for i, name := range names {
		groups[i] = Group{
			Name: name,
			Run:  func() { *calls = append(*calls, name) },
		}
	}
	return groups
}

func TestNewTable(t *testing.T) {
	noop := func() {}

	tests := []struct {
		name    string
		groups  []Group
		wantErr error
	}{
		{
			name:    "empty",
			groups:  nil,
			wantErr: ErrEmptyTable,
		},
		{
			name:    "missing name",
			groups:  []Group{{Name: " ", Run: noop}},
			wantErr: ErrInvalidGroup,
		},
		{
			name:    "missing run-all",
			groups:  []Group{{Name: "basics"}},
			wantErr: ErrInvalidGroup,
		},
		{
			name:    "duplicate ignoring case",
			groups:  []Group{{Name: "basics", Run: noop}, {Name: "Basics", Run: noop}},
			wantErr: ErrDuplicateGroup,
		},
		{
			name:   "valid",
			groups: []Group{{Name: "basics", Run: noop}, {Name: "generics", Run: noop}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.groups...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.groups), table.Len())
		})
	}
}

func TestTableIsTotal(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics", "concurrency", "generics")...)
	require.NoError(t, err)

	for i := 0; i < table.Len(); i++ {
		g, err := table.At(i)
		require.NoError(t, err, "index %d should be mapped", i)
		assert.NotEmpty(t, g.Name)
		assert.NotNil(t, g.Run)
	}
	assert.Equal(t, []string{"basics", "concurrency", "generics"}, table.Names())
}

func TestDispatchInvokesExactlyTheBoundGroup(t *testing.T) {
	names := []string{"basics", "concurrency", "generics"}

	for i, want := range names {
		t.Run(want, func(t *testing.T) {
			var calls []string
			table, err := NewTable(recordingGroups(&calls, names...)...)
			require.NoError(t, err)

			require.NoError(t, table.Dispatch(i))
			assert.Equal(t, []string{want}, calls)
		})
	}
}

func TestDispatchOutOfRangeRunsNothing(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics", "concurrency", "generics")...)
	require.NoError(t, err)

	for _, i := range []int{-1, 3, 100} {
		err := table.Dispatch(i)
		require.ErrorIs(t, err, ErrOutOfRange, "index %d", i)
	}
	assert.Empty(t, calls)
}

func TestTableIndex(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics", "concurrency", "generics")...)
	require.NoError(t, err)

	tests := []struct {
		ref     string
		want    int
		wantErr error
	}{
		{ref: "basics", want: 0},
		{ref: "GENERICS", want: 2},
		{ref: " concurrency ", want: 1},
		{ref: "2", want: 1},
		{ref: "0", wantErr: ErrOutOfRange},
		{ref: "4", wantErr: ErrOutOfRange},
		{ref: "templates", wantErr: ErrUnknownGroup},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := table.Index(tt.ref)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupsReturnsCopy(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics", "generics")...)
	require.NoError(t, err)

	groups := table.Groups()
	groups[0].Name = "changed"

	assert.Equal(t, []string{"basics", "generics"}, table.Names())
}
