// Package enumfile loads value enumeration declarations from YAML.
//
// A file is a mapping from type name to definition:
//
//	HTTPStatus:
//	  description: Common response codes
//	  values:
//	    OK: 200
//	    NotFound:
//	      value: 404
//	      description: The resource does not exist
//	ExtendedStatus:
//	  extends: HTTPStatus
//	  case-insensitive: true
//	  values:
//	    Teapot: 418
//
// Type and member order follow the document. Values keep their YAML types,
// so `1`, `"1"` and `true` are three different values. A type that extends
// another starts with all of the base's members, in the base's order, and
// lives in its own registry.
//
// Unknown bases and extension cycles are rejected by Load. Duplicate member
// keys are not: like any other enumeration they surface as
// *multiton.DuplicateKeyError when the type is first used, or from
// Set.Validate.
package enumfile
