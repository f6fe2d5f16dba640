package service

import "strings"

// resolveImageURL prefixes a stored relative image path with the
// uploads base URL so API responses carry fetchable locations. Empty
// paths and absolute URLs pass through untouched.
func resolveImageURL(baseURL, image string) string {
	if baseURL == "" || image == "" {
		return image
	}
	if strings.Contains(image, "://") {
		return image
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(image, "/")
}
