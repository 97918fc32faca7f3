package object_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureString(t *testing.T) {
	t.Parallel()

	sig := object.NewSignature("John Doe", "john@domain.tld")
	now := time.Now().UTC()
	sig.Time = now

	expect := fmt.Sprintf("John Doe <john@domain.tld> %d +0000", now.Unix())
	assert.Equal(t, expect, sig.String())
}

func TestNewSignatureFromBytes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc          string
		signature     string
		expectsErr    bool
		expectedName  string
		expectedEmail string
		expectedTS    int64
	}{
		{
			desc:          "valid negative offset",
			signature:     "Melvin Laplanche <melvin@example.com> 1566115917 -0700",
			expectedName:  "Melvin Laplanche",
			expectedEmail: "melvin@example.com",
			expectedTS:    1566115917,
		},
		{
			desc:          "valid positive offset",
			signature:     "Melvin Laplanche <melvin@example.com> 1566005917 +0100",
			expectedName:  "Melvin Laplanche",
			expectedEmail: "melvin@example.com",
			expectedTS:    1566005917,
		},
		{
			desc:       "invalid timezone",
			signature:  "Melvin <melvin@example.com> 1566005917 nope",
			expectsErr: true,
		},
		{
			desc:       "no email",
			signature:  "Melvin",
			expectsErr: true,
		},
		{
			desc:       "empty",
			signature:  "",
			expectsErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			sig, err := object.NewSignatureFromBytes([]byte(tc.signature))
			if tc.expectsErr {
				assert.ErrorIs(t, err, object.ErrSignatureInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, sig.Name)
			assert.Equal(t, tc.expectedEmail, sig.Email)
			assert.Equal(t, tc.expectedTS, sig.Time.Unix())
		})
	}
}

func testTreeID(t *testing.T) ginternals.Oid {
	t.Helper()
	id, err := ginternals.NewOidFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, err)
	return id
}

func TestCommitRoundTrip(t *testing.T) {
	t.Parallel()

	author := object.NewSignature("Jane Doe", "jane@example.com")
	c := object.NewCommit(testTreeID(t), author, &object.CommitOptions{
		Message: "initial commit\n",
	})

	assert.Equal(t, author, c.Committer())
	assert.Empty(t, c.ParentIDs())

	parsed, err := object.NewCommitFromObject(c.ToObject())
	require.NoError(t, err)
	assert.Equal(t, c.TreeID(), parsed.TreeID())
	assert.Equal(t, "initial commit\n", parsed.Message())
	assert.Equal(t, author.Name, parsed.Author().Name)
	assert.Equal(t, author.Email, parsed.Author().Email)
}

func TestCommitWithParents(t *testing.T) {
	t.Parallel()

	author := object.NewSignature("Jane Doe", "jane@example.com")
	parentID := testTreeID(t)
	c := object.NewCommit(testTreeID(t), author, &object.CommitOptions{
		Message:   "second commit\n",
		ParentIDs: []ginternals.Oid{parentID},
	})

	parsed, err := object.NewCommitFromObject(c.ToObject())
	require.NoError(t, err)
	require.Len(t, parsed.ParentIDs(), 1)
	assert.Equal(t, parentID, parsed.ParentIDs()[0])
}

func TestCommitFromObjectMissingTree(t *testing.T) {
	t.Parallel()

	raw := object.New(object.TypeCommit, []byte("author Jane <jane@example.com> 1566115917 +0000\ncommitter Jane <jane@example.com> 1566115917 +0000\n\nmsg"))
	_, err := object.NewCommitFromObject(raw)
	assert.ErrorIs(t, err, object.ErrCommitInvalid)
}

func TestCommitFromObjectMissingAuthor(t *testing.T) {
	t.Parallel()

	raw := object.New(object.TypeCommit, []byte(fmt.Sprintf("tree %s\n\nmsg", testTreeID(t).String())))
	_, err := object.NewCommitFromObject(raw)
	assert.ErrorIs(t, err, object.ErrCommitInvalid)
}

func TestCommitFromObjectWrongType(t *testing.T) {
	t.Parallel()

	_, err := object.NewCommitFromObject(object.New(object.TypeBlob, []byte("x")))
	assert.ErrorIs(t, err, object.ErrObjectInvalid)
}
