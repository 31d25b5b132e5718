package cart

// ResolveVariantID derives the stable key for a (product, color, size)
// combination. Additions and lookups must go through the same derivation,
// otherwise merging by variant breaks. Absent selections and empty strings
// fold into the same bucket.
func ResolveVariantID(productID, color, size string) string {
	return productID + "-" + color + "-" + size
}
