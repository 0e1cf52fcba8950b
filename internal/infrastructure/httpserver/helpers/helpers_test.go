package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestFormatDateVariants(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 4, 0, 0, time.UTC)
	require.Equal(t, "March 1, 2024", FormatDate(ts))
	require.Equal(t, "Mar 1, 2024", FormatDateShort(ts))
	require.Equal(t, "March 1, 2024 15:04", FormatDateTime(ts))
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "₺149.90", FormatPrice(149.9))
	require.Equal(t, "₺0.00", FormatPrice(0))
	require.Equal(t, "$1000", FormatPriceWith(999.6, "$", 0))
}

func pageContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageParams(t *testing.T) {
	page, size := PageParams(pageContext(t, ""))
	require.Equal(t, 1, page)
	require.Equal(t, 20, size)

	page, size = PageParams(pageContext(t, "page=3&page_size=50"))
	require.Equal(t, 3, page)
	require.Equal(t, 50, size)

	page, size = PageParams(pageContext(t, "page=-1&page_size=9999"))
	require.Equal(t, 1, page, "non-positive pages fall back")
	require.Equal(t, 100, size, "page size is capped")
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	require.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	require.Equal(t, []int{5}, Paginate(items, 3, 2))
	require.Empty(t, Paginate(items, 4, 2), "out-of-range page is empty, not an error")
}

func TestPaginateClampsBadInput(t *testing.T) {
	items := []int{1, 2, 3}
	require.Equal(t, []int{1, 2}, Paginate(items, 0, 2), "non-positive pages mean the first page")
	require.Equal(t, []int{1, 2}, Paginate(items, -3, 2))
	require.Empty(t, Paginate(items, 1, -1))
}
