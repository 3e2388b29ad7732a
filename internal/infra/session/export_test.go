package session

// Len число записей, включая ещё не вычищенные истёкшие
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
