package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormDataValidate(t *testing.T) {
	valid := FormData{Name: "Lamp", Price: 12.5, Description: "desk lamp", Category: CategoryHome}
	require.Empty(t, valid.Validate())

	invalid := FormData{Name: "", Price: -1, Category: Category("gadgets")}
	problems := invalid.Validate()
	require.Contains(t, problems, "name")
	require.Contains(t, problems, "price")
	require.Contains(t, problems, "category")

	free := FormData{Name: "Sample", Price: 0, Category: CategoryBooks}
	require.Empty(t, free.Validate(), "zero is a legal price")
}

func TestCategoryAllIsNotAssignable(t *testing.T) {
	require.False(t, CategoryAll.IsValid(), "the sentinel filters, it does not classify")
	form := FormData{Name: "x", Category: CategoryAll}
	require.Contains(t, form.Validate(), "category")
}

func TestCategoryLabelFallsBackToRawCode(t *testing.T) {
	require.Equal(t, "Electronics", CategoryElectronics.Label())
	require.Equal(t, "vintage", Category("vintage").Label())
	require.Equal(t, "default", Category("vintage").Color())
}
