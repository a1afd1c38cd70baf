package catalog

// categorySet 처음 발견된 순서를 유지하는 카테고리 집합입니다. 원소는 추가만 되고 제거되지 않습니다.
type categorySet struct {
	order []string
	seen  map[string]struct{}
}

func newCategorySet() *categorySet {
	return &categorySet{seen: make(map[string]struct{})}
}

// add 새로운 카테고리를 추가하고, 하나라도 추가되었는지 여부를 반환합니다. 빈 문자열은 무시합니다.
func (s *categorySet) add(categories ...string) bool {
	added := false
	for _, c := range categories {
		if c == "" {
			continue
		}
		if _, ok := s.seen[c]; ok {
			continue
		}
		s.seen[c] = struct{}{}
		s.order = append(s.order, c)
		added = true
	}
	return added
}

func (s *categorySet) addEntries(entries []Entry) bool {
	added := false
	for _, e := range entries {
		if s.add(e.Category) {
			added = true
		}
	}
	return added
}

func (s *categorySet) list() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
