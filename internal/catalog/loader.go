package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"tuisearch/internal/domain"
)

// Load reads a terms file. Each line is a term, optionally followed by a tab
// and a detail. Blank lines and lines starting with # are skipped.
func Load(path string) ([]domain.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads terms from r. Later duplicates of a term are dropped.
func Parse(r io.Reader) ([]domain.Entry, error) {
	var entries []domain.Entry
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		term, detail, _ := strings.Cut(line, "\t")
		term = strings.TrimSpace(term)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		entries = append(entries, domain.Entry{Term: term, Detail: strings.TrimSpace(detail)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Sample is the catalog used when no terms file is configured
func Sample() []domain.Entry {
	return []domain.Entry{
		{Term: "Amsterdam", Detail: "Netherlands"},
		{Term: "Athens", Detail: "Greece"},
		{Term: "Auckland", Detail: "New Zealand"},
		{Term: "Bangkok", Detail: "Thailand"},
		{Term: "Barcelona", Detail: "Spain"},
		{Term: "Berlin", Detail: "Germany"},
		{Term: "Bogotá", Detail: "Colombia"},
		{Term: "Buenos Aires", Detail: "Argentina"},
		{Term: "Cairo", Detail: "Egypt"},
		{Term: "Cape Town", Detail: "South Africa"},
		{Term: "Chicago", Detail: "United States"},
		{Term: "Copenhagen", Detail: "Denmark"},
		{Term: "Dublin", Detail: "Ireland"},
		{Term: "Edinburgh", Detail: "United Kingdom"},
		{Term: "Helsinki", Detail: "Finland"},
		{Term: "Hong Kong", Detail: "China"},
		{Term: "Istanbul", Detail: "Türkiye"},
		{Term: "Kyoto", Detail: "Japan"},
		{Term: "Lagos", Detail: "Nigeria"},
		{Term: "Lima", Detail: "Peru"},
		{Term: "Lisbon", Detail: "Portugal"},
		{Term: "London", Detail: "United Kingdom"},
		{Term: "Los Angeles", Detail: "United States"},
		{Term: "Madrid", Detail: "Spain"},
		{Term: "Melbourne", Detail: "Australia"},
		{Term: "Mexico City", Detail: "Mexico"},
		{Term: "Montréal", Detail: "Canada"},
		{Term: "Mumbai", Detail: "India"},
		{Term: "Nairobi", Detail: "Kenya"},
		{Term: "New York", Detail: "United States"},
		{Term: "Oslo", Detail: "Norway"},
		{Term: "Paris", Detail: "France"},
		{Term: "Prague", Detail: "Czechia"},
		{Term: "Reykjavík", Detail: "Iceland"},
		{Term: "Rome", Detail: "Italy"},
		{Term: "San Francisco", Detail: "United States"},
		{Term: "Santiago", Detail: "Chile"},
		{Term: "São Paulo", Detail: "Brazil"},
		{Term: "Seoul", Detail: "South Korea"},
		{Term: "Singapore", Detail: "Singapore"},
		{Term: "Stockholm", Detail: "Sweden"},
		{Term: "Sydney", Detail: "Australia"},
		{Term: "Tokyo", Detail: "Japan"},
		{Term: "Toronto", Detail: "Canada"},
		{Term: "Vancouver", Detail: "Canada"},
		{Term: "Vienna", Detail: "Austria"},
		{Term: "Warsaw", Detail: "Poland"},
		{Term: "Zürich", Detail: "Switzerland"},
	}
}
