package tests

import "encoding/json"

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// countRows counts the records inside a raw query result
func countRows(results []interface{}) int {
	count := 0
	for _, item := range results {
		resp, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		rows, ok := resp["result"].([]interface{})
		if !ok {
			continue
		}
		count += len(rows)
	}
	return count
}
