package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.mydb/internal/engine"
	"go.mydb/internal/storage"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name string
		line string
		want engine.Statement
		err  error
	}{
		{
			name: "insert",
			line: "insert 1 cstack foo@bar.com",
			want: engine.Statement{Type: engine.StatementInsert, Row: storage.Row{ID: 1, Username: "cstack", Email: "foo@bar.com"}},
		},
		{
			name: "insert with extra spaces",
			line: "  insert   2  bob   bob@example.com ",
			want: engine.Statement{Type: engine.StatementInsert, Row: storage.Row{ID: 2, Username: "bob", Email: "bob@example.com"}},
		},
		{
			name: "insert max width",
			line: "insert 4294967295 " + strings.Repeat("a", 32) + " " + strings.Repeat("a", 255),
			want: engine.Statement{Type: engine.StatementInsert, Row: storage.Row{ID: 4294967295, Username: strings.Repeat("a", 32), Email: strings.Repeat("a", 255)}},
		},
		{name: "select", line: "select", want: engine.Statement{Type: engine.StatementSelect}},
		{name: "missing fields", line: "insert 1 cstack", err: engine.ErrSyntax},
		{name: "extra fields", line: "insert 1 a b c", err: engine.ErrSyntax},
		{name: "non numeric id", line: "insert abc a b", err: engine.ErrNegativeID},
		{name: "id out of int64 range", line: "insert 99999999999999999999 a b", err: engine.ErrSyntax},
		{name: "id overflow", line: "insert 4294967296 a b", err: engine.ErrSyntax},
		{name: "negative id", line: "insert -1 cstack foo@bar.com", err: engine.ErrNegativeID},
		{name: "zero id", line: "insert 0 cstack foo@bar.com", err: engine.ErrNegativeID},
		{name: "long username", line: "insert 1 " + strings.Repeat("a", 33) + " a@b", err: engine.ErrStringTooLong},
		{name: "long email", line: "insert 1 a " + strings.Repeat("a", 256), err: engine.ErrStringTooLong},
		{name: "unknown keyword", line: "update 1 a b", err: engine.ErrUnrecognizedStatement},
		{name: "blank", line: "   ", err: engine.ErrUnrecognizedStatement},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.Prepare(tc.line)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
