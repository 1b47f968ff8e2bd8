// Package codec serializes the full product collection to and from the
// structured-text form kept on disk. It knows nothing about catalog rules.
package codec

import (
	jsoniter "github.com/json-iterator/go"

	"product-catalog/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode renders the collection as indented JSON with a trailing newline.
// Field order follows the struct definitions, so encoding the same
// collection twice yields identical bytes.
func Encode(products []models.Product) ([]byte, error) {
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a collection previously produced by Encode.
func Decode(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}
