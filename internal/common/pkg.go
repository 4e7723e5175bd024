package common

// UnknownStr is the fallback name for enum values outside the known range.
const UnknownStr = "unknown"
