package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name   string
		params PaginationParams
		want   []int
		next   bool
		prev   bool
	}{
		{"first page", PaginationParams{Page: 1, PerPage: 2}, []int{1, 2}, true, false},
		{"last page", PaginationParams{Page: 3, PerPage: 2}, []int{5}, false, true},
		{"past the end", PaginationParams{Page: 9, PerPage: 2}, []int{}, false, true},
		{"defaults", PaginationParams{}, []int{1, 2, 3, 4, 5}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.params)
			if len(got.Items) != len(tt.want) {
				t.Fatalf("items = %v, want %v", got.Items, tt.want)
			}
			for i := range tt.want {
				if got.Items[i] != tt.want[i] {
					t.Fatalf("items = %v, want %v", got.Items, tt.want)
				}
			}
			if got.Pagination.Total != 5 || got.Pagination.HasNext != tt.next || got.Pagination.HasPrev != tt.prev {
				t.Fatalf("pagination = %+v", got.Pagination)
			}
		})
	}
}
