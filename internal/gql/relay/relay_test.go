package relay

import (
	"testing"

	"github.com/washtime/api/internal/testutil"
)

func TestGlobalIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := ToGlobalID("User", "5f3a1c")

	resolved := FromGlobalID(id)
	testutil.Assert(t, "User", resolved.Type, "decoded type")
	testutil.Assert(t, "5f3a1c", resolved.ID, "decoded id")
}

func TestFromGlobalIDMalformed(t *testing.T) {
	t.Parallel()

	testutil.Assert(t, ResolvedGlobalID{}, FromGlobalID("not base64!!"), "invalid encoding")
	testutil.Assert(t, ResolvedGlobalID{}, FromGlobalID("bm9jb2xvbg=="), "no separator")
	testutil.Assert(t, ResolvedGlobalID{}, FromGlobalID(""), "empty input")
}

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()

	cursor := OffsetToCursor(41)
	testutil.Assert(t, 41, CursorToOffset(cursor), "decoded offset")
}

func TestCursorToOffsetInvalid(t *testing.T) {
	t.Parallel()

	testutil.Assert(t, -1, CursorToOffset("garbage"), "garbage cursor")
	testutil.Assert(t, -1, CursorToOffset(ToGlobalID("User", "3")), "wrong cursor type")
	testutil.Assert(t, -1, CursorToOffset(ToGlobalID("arrayconnection", "abc")), "non-numeric offset")
}

func TestConnectionFromSlice(t *testing.T) {
	t.Parallel()

	conn := ConnectionFromSlice([]interface{}{"a", "b", "c"}, 2, 10)

	testutil.Assert(t, 3, len(conn.Edges), "edge count")
	testutil.Assert(t, 10, conn.TotalCount, "total count")
	testutil.Assert(t, OffsetToCursor(2), conn.Edges[0].Cursor, "first cursor")
	testutil.Assert(t, OffsetToCursor(4), conn.Edges[2].Cursor, "last cursor")
	testutil.Assert(t, true, conn.PageInfo.HasPreviousPage, "has previous page")
	testutil.Assert(t, true, conn.PageInfo.HasNextPage, "has next page")
	testutil.Assert(t, conn.Edges[0].Cursor, conn.PageInfo.StartCursor, "start cursor")
	testutil.Assert(t, conn.Edges[2].Cursor, conn.PageInfo.EndCursor, "end cursor")
}

func TestConnectionFromSliceLastPage(t *testing.T) {
	t.Parallel()

	conn := ConnectionFromSlice([]interface{}{"x"}, 9, 10)

	testutil.Assert(t, false, conn.PageInfo.HasNextPage, "has next page")
	testutil.Assert(t, true, conn.PageInfo.HasPreviousPage, "has previous page")
}

func TestEmptyConnection(t *testing.T) {
	t.Parallel()

	conn := EmptyConnection()

	testutil.Assert(t, 0, len(conn.Edges), "edge count")
	testutil.Assert(t, 0, conn.TotalCount, "total count")
	testutil.Assert(t, false, conn.PageInfo.HasNextPage, "has next page")
}
