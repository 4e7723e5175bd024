// Package naming is the single authority for generated symbol names.
//
// Every symbol a fragment produces is derived here, so that the registry
// builder and the import planner can never disagree on spelling:
//   - document-variable symbols ("FooFragmentDoc")
//   - type-specialized fragment names ("FooFragment")
//   - per-possible-type qualified names ("Foo_User_Fragment")
package naming
