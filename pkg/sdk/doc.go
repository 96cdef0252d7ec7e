// Package kbase is a Go client for the kbase knowledge base tool server.
//
// The client speaks MCP. It either connects to a running server over
// streamable HTTP or embeds one in-process:
//
//	// Remote
//	client, _ := kbase.New(ctx, kbase.WithEndpoint("http://localhost:8080/mcp"), kbase.WithAPIKey(key))
//
//	// Embedded, serving the built-in sample documents
//	client, _ := kbase.New(ctx, kbase.WithEmbeddedSample())
//
//	defer client.Close()
//	text, _ := client.Search(ctx, kbase.SearchParams{Query: "kubernetes", MaxResults: 3})
//	doc, _ := client.GetDocument(ctx, "doc-001", kbase.FormatJSON)
//	cats, _ := client.ListCategories(ctx, kbase.FormatMarkdown)
//
// Every tool returns rendered text. A response the server marked as an error
// (invalid arguments, internal failure) is returned as a *ToolError.
package kbase
