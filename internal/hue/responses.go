package hue

// an entry of the array the v1 API answers with when a request fails
//
//	[{"error": {"type": 1, "address": "/", "description": "unauthorized user"}}]
type GeneralResponse struct {
	Error *SingleError `json:"error"`
}

type SingleError struct {
	Type        int    `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
}
