// Package menu holds the pure filtering and ordering rules used by every menu view.
package menu

import (
	"sort"
	"strings"
	"unicode"

	"mikes-grill/grillctl/internal/domain"
)

const (
	AllCategories  = "All"
	DrinksCategory = "Drinks"
)

// DrinkBases is the display priority of drink families.
var DrinkBases = []string{"shake", "malt", "sundae", "soda", "coffee", "tea", "juice"}

var drinkSizes = map[string]int{"small": 1, "medium": 2, "large": 3}

// Search keeps items whose name, description or category name contains term,
// ignoring case. A blank term returns items unchanged.
func Search(items []domain.MenuItem, term string) []domain.MenuItem {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return items
	}
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) ||
			strings.Contains(strings.ToLower(item.CategoryName()), needle) {
			out = append(out, item)
		}
	}
	return out
}

func InCategory(items []domain.MenuItem, category string) []domain.MenuItem {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return items
	}
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.CategoryName(), category) {
			out = append(out, item)
		}
	}
	return out
}

// drinkKey returns the base rank (-1 when the name has no known base) and the size rank.
// Bases match whole words only, so "Steamer" is not a tea.
func drinkKey(name string) (base, size int) {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	base = -1
	for i, b := range DrinkBases {
		if hasWord(words, b) {
			base = i
			break
		}
	}
	for _, word := range words {
		if rank, ok := drinkSizes[word]; ok {
			size = rank
			break
		}
	}
	return base, size
}

func hasWord(words []string, base string) bool {
	for _, word := range words {
		if word == base || word == base+"s" {
			return true
		}
	}
	return false
}

func isDrink(item domain.MenuItem) bool {
	return strings.EqualFold(item.CategoryName(), DrinksCategory)
}

// SortForDisplay orders items by ascending id, except that drinks are
// regrouped among their own positions by base, then size (unsized first), then id.
// Drinks with no recognised base follow the grouped ones. The input is not modified.
func SortForDisplay(items []domain.MenuItem) []domain.MenuItem {
	out := append([]domain.MenuItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	var slots []int
	var drinks []domain.MenuItem
	for i, item := range out {
		if isDrink(item) {
			slots = append(slots, i)
			drinks = append(drinks, item)
		}
	}

	sort.SliceStable(drinks, func(i, j int) bool {
		bi, si := drinkKey(drinks[i].Name)
		bj, sj := drinkKey(drinks[j].Name)
		if (bi < 0) != (bj < 0) {
			return bi >= 0
		}
		if bi < 0 {
			return drinks[i].ID < drinks[j].ID
		}
		if bi != bj {
			return bi < bj
		}
		if si != sj {
			return si < sj
		}
		return drinks[i].ID < drinks[j].ID
	})

	for k, slot := range slots {
		out[slot] = drinks[k]
	}
	return out
}
