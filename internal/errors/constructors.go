package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed: "+reason).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Tree walk and materialization errors

func IOFailed(operation, path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

func PathNotUnderRoot(root, path string, cause error) *SiteError {
	return Wrap(cause, CategoryPath, SeverityFatal, "path is not under the source root").
		WithContext("root", root).
		WithContext("path", path)
}

// Template engine errors

func TemplateLookupFailed(name string, cause error) *SiteError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template lookup failed").
		WithContext("template", name)
}

func RenderFailed(name string, cause error) *SiteError {
	return Wrap(cause, CategoryRender, SeverityFatal, "template render failed").
		WithContext("template", name)
}

// Internal errors

func Unexpected(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
