// Package parser outlines source files into function spans so a matched line
// can be attributed to the function that encloses it.
//
// # Basic Usage
//
//	p := parser.New()
//	result, err := p.ParseFile("/path/to/file.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	outline := p.Outline("/path/to/file.go", result)
//	fmt.Println(outline.FunctionAt(42)) // e.g. "store.Cache.Lookup"
//
// # Languages
//
// The outlining strategy is picked from the file extension:
//   - Go: go/ast. Functions are named pkg.Func, methods pkg.Type.Method with
//     pointer receivers and type parameters stripped. Function literals belong
//     to the declaration that contains them.
//   - C, C++, C#, Java, JavaScript, TypeScript, Kotlin, Swift, Rust, PHP and
//     Scala: brace matching over code with comments and literals blanked out.
//     Names are qualified by enclosing namespaces, classes, structs and impls,
//     as in Namespace.Class.Method.
//   - Python: def and class blocks by indentation.
//
// Files of any other type produce an empty outline; every match in them
// groups under types.NoFunction.
//
// # Error Handling
//
// Syntax errors are not fatal. The parser records them in the result and
// still outlines what it could read:
//
//	result, _ := p.ParseFile("broken.go")
//	if result.HasErrors() {
//	    for _, parseErr := range result.Errors {
//	        fmt.Printf("Parse error: %v\n", parseErr)
//	    }
//	}
package parser
