package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.mydb/internal/storage"
)

func TestRowRoundTrip(t *testing.T) {
	rows := []storage.Row{
		{ID: 1, Username: "cstack", Email: "foo@bar.com"},
		{ID: 0, Username: "", Email: ""},
		{ID: 4294967295, Username: strings.Repeat("a", storage.ColumnUsernameSize), Email: strings.Repeat("e", storage.ColumnEmailSize)},
	}

	buf := make([]byte, storage.RowSize)
	for _, r := range rows {
		storage.SerializeRow(r, buf)
		require.Equal(t, r, storage.DeserializeRow(buf))
	}
}

func TestSerializeRowClearsPreviousBytes(t *testing.T) {
	buf := make([]byte, storage.RowSize)
	storage.SerializeRow(storage.Row{ID: 7, Username: "longer-name", Email: "someone@example.com"}, buf)
	storage.SerializeRow(storage.Row{ID: 8, Username: "al", Email: "a@b"}, buf)

	require.Equal(t, storage.Row{ID: 8, Username: "al", Email: "a@b"}, storage.DeserializeRow(buf))
	require.Equal(t, byte(0), buf[storage.UsernameOffset+2])
	require.Equal(t, byte(0), buf[storage.EmailOffset+3])
}

func TestRowLayout(t *testing.T) {
	require.Equal(t, 293, storage.RowSize)
	require.Equal(t, 4, storage.UsernameOffset)
	require.Equal(t, 37, storage.EmailOffset)
}

func TestRowValidate(t *testing.T) {
	require.NoError(t, storage.Row{Username: strings.Repeat("u", 32), Email: strings.Repeat("e", 255)}.Validate())

	err := storage.Row{Username: strings.Repeat("u", 33)}.Validate()
	require.ErrorIs(t, err, storage.ErrFieldTooLong)
	require.False(t, storage.IsFatal(err))

	err = storage.Row{Email: strings.Repeat("e", 256)}.Validate()
	require.ErrorIs(t, err, storage.ErrFieldTooLong)
}

func TestRowString(t *testing.T) {
	require.Equal(t, "(1, user1, person1@example.com)", storage.Row{ID: 1, Username: "user1", Email: "person1@example.com"}.String())
}
