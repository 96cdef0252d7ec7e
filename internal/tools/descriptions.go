package tools

const searchDescription = `Search the knowledge base for documentation and best practices.

Matches the query against titles, content, tags and categories and returns
the most relevant documents first.

**When to use:**
- Finding best practices for a technology or pattern
- Looking up documentation on a specific topic
- Discovering related content by keyword

**Parameters:**
- query: keywords or phrase to search for (required, 1-500 characters)
- category: restrict results to one category (optional, see list_categories)
- max_results: number of results to return (1-10, default: 5)
- format: 'json' or 'markdown' (default: markdown)
- detail_level: 'concise' for a one-line summary or 'detailed' for full content (default: concise)

**Returns:**
- Relevance-ranked documents with title, ID, category, tags and content
- A guidance message when nothing matches

**Example usage:**
- search_knowledge_base(query="authentication", detail_level="detailed")
- search_knowledge_base(query="microservices", category="architecture")`

const getDocumentDescription = `Retrieve one document by its unique identifier.

Use this once you have a document ID, usually from search results. It is
cheaper than searching when the exact document is known.

**When to use:**
- Following up on a search result
- Referencing a document by ID
- Reading the complete content of a document

**Parameters:**
- document_id: the unique document ID, e.g. "doc-001" (required)
- format: 'json' or 'markdown' (default: markdown)

**Returns:**
- The complete document with content, metadata and tags
- A message naming the ID and suggesting search_knowledge_base when the ID does not exist

**Example usage:**
- get_document(document_id="doc-001")`

const listCategoriesDescription = `List every documentation category in the knowledge base.

Use this to discover which topics are covered before running a filtered search.

**When to use:**
- The user asks what topics are covered
- Before a search restricted to one category

**Parameters:**
- format: 'json' or 'markdown' (default: markdown)

**Returns:**
- Every category in alphabetical order with its document count
- The total number of documents

**Example usage:**
- list_categories()`
