package document

import domdoc "github.com/kailas-cloud/kbase/internal/domain/document"

// Sample returns the built-in five-document collection.
func Sample() ([]domdoc.Document, error) {
	docs := make([]domdoc.Document, 0, len(sampleDocs))
	for _, d := range sampleDocs {
		doc, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

var sampleDocs = []docDTO{
	{
		ID:       "doc-001",
		Title:    "API Authentication Best Practices",
		Category: "security",
		Content: `
Authentication is critical for API security. Key practices include:

1. Use OAuth 2.0 or JWT tokens for stateless authentication
2. Implement rate limiting per user/token
3. Always use HTTPS in production
4. Rotate secrets regularly (every 90 days minimum)
5. Implement proper token expiration (15-60 minutes for access tokens)
6. Store refresh tokens securely
7. Use API keys for service-to-service communication
8. Implement request signing for sensitive operations

Common pitfalls:
- Storing tokens in localStorage (use httpOnly cookies instead)
- Not validating token signatures
- Overly permissive CORS policies
- Logging sensitive authentication data
`,
		Tags:    []string{"authentication", "security", "api", "oauth", "jwt"},
		Created: "2024-01-15",
		Updated: "2024-10-20",
	},
	{
		ID:       "doc-002",
		Title:    "Microservices Communication Patterns",
		Category: "architecture",
		Content: `
Effective microservices communication requires choosing the right pattern:

Synchronous Patterns:
- REST APIs: Simple, widely supported, but can create coupling
- gRPC: High performance, strong typing, requires HTTP/2
- GraphQL: Flexible querying, good for complex data requirements

Asynchronous Patterns:
- Message Queues (RabbitMQ, SQS): Reliable, decoupled, eventual consistency
- Event Streaming (Kafka, Kinesis): High throughput, event sourcing
- Pub/Sub (Google Pub/Sub, SNS): Fan-out patterns, loose coupling

Choosing the right pattern:
- Use async for long-running operations
- Use sync for immediate consistency requirements
- Consider circuit breakers for resilience
- Implement idempotency for all operations
- Design for failure (timeouts, retries, fallbacks)
`,
		Tags:    []string{"microservices", "architecture", "rest", "grpc", "messaging"},
		Created: "2024-02-10",
		Updated: "2024-09-15",
	},
	{
		ID:       "doc-003",
		Title:    "Database Scaling Strategies",
		Category: "database",
		Content: `
Scaling databases requires understanding your bottlenecks:

Vertical Scaling:
- Increase CPU, RAM, or storage
- Simple but has limits
- Good for initial growth

Horizontal Scaling:
- Read Replicas: Offload read traffic, eventual consistency
- Sharding: Partition data across servers, complex but unlimited scale
- Multi-region: Geographic distribution, high availability

Caching Strategies:
- Redis/Memcached for hot data
- CDN for static content
- Application-level caching
- Database query result caching

When to use each:
- Start with vertical scaling and read replicas
- Add caching when read-heavy
- Consider sharding only when necessary (adds complexity)
- Use time-series databases for metrics/logs
`,
		Tags:    []string{"database", "scaling", "performance", "redis", "sharding"},
		Created: "2024-03-05",
		Updated: "2024-10-01",
	},
	{
		ID:       "doc-004",
		Title:    "Event-Driven Architecture Patterns",
		Category: "architecture",
		Content: `
Event-driven architecture enables loose coupling and scalability:

Core Concepts:
- Events: Immutable facts about state changes
- Event Producers: Services that emit events
- Event Consumers: Services that react to events
- Event Store: Persistent log of all events

Key Patterns:
1. Event Sourcing: Store events as source of truth
2. CQRS: Separate read and write models
3. Saga Pattern: Manage distributed transactions
4. Event Notification: Simple pub/sub
5. Event-Carried State Transfer: Include state in events

Benefits:
- Loose coupling between services
- Easy to add new consumers
- Natural audit trail
- Supports event replay and debugging

Challenges:
- Eventual consistency
- Event schema evolution
- Debugging distributed flows
- Ensuring event ordering when needed
`,
		Tags:    []string{"event-driven", "architecture", "cqrs", "event-sourcing", "saga"},
		Created: "2024-04-12",
		Updated: "2024-10-10",
	},
	{
		ID:       "doc-005",
		Title:    "Container Orchestration with Kubernetes",
		Category: "devops",
		Content: `
Kubernetes orchestrates containerized applications at scale:

Core Components:
- Pods: Smallest deployable units
- Deployments: Manage pod replicas
- Services: Network access to pods
- Ingress: External access routing
- ConfigMaps/Secrets: Configuration management

Best Practices:
- Use namespaces for isolation
- Set resource requests and limits
- Implement health checks (liveness/readiness)
- Use Horizontal Pod Autoscaling
- Store secrets in external vaults (not etcd)
- Implement network policies
- Use StatefulSets for stateful apps
- Version your manifests in Git

Common Patterns:
- Sidecar: Helper containers in pods
- Ambassador: Proxy for external services
- Adapter: Standardize output
- Init Containers: Setup before main container
`,
		Tags:    []string{"kubernetes", "containers", "devops", "orchestration", "docker"},
		Created: "2024-05-20",
		Updated: "2024-10-05",
	},
}
