package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/querykit/querykit/internal/integration"
)

// clientRuntimeTS is the request wrapper emitted into client.ts. The two
// %s placeholders receive the default base URL and the default headers
// object literal.
const clientRuntimeTS = `export type ApiErrorKind = "network" | "timeout" | "http";

export class ApiError extends Error {
  readonly kind: ApiErrorKind;
  readonly status?: number;
  readonly body?: unknown;

  constructor(kind: ApiErrorKind, message: string, status?: number, body?: unknown) {
    super(message);
    this.name = "ApiError";
    this.kind = kind;
    this.status = status;
    this.body = body;
  }
}

export interface RequestOptions {
  method: string;
  path: string;
  query?: Record<string, unknown>;
  headers?: Record<string, unknown>;
  body?: unknown;
  signal?: AbortSignal;
  timeoutMs?: number;
}

/** Merges header sources, dropping undefined and null values so optional
 * header parameters a caller omitted never reach the wire. */
export function buildHeaders(...sources: (Record<string, unknown> | undefined)[]): Record<string, string> {
  const headers: Record<string, string> = {};
  for (const source of sources) {
    if (!source) continue;
    for (const [key, value] of Object.entries(source)) {
      if (value === undefined || value === null) continue;
      headers[key] = String(value);
    }
  }
  return headers;
}

/** Default retry count applied to query hooks. Mutations never retry. */
export const defaultRetry = 3;

const defaultTimeoutMs = 30000;

export class ApiClient {
  constructor(
    private readonly baseUrl: string = %s,
    private readonly defaultHeaders: Record<string, string> = %s,
  ) {}

  async request<T>(options: RequestOptions): Promise<T> {
    const controller = new AbortController();
    const timeoutMs = options.timeoutMs ?? defaultTimeoutMs;
    const timer = setTimeout(() => controller.abort(), timeoutMs);
    options.signal?.addEventListener("abort", () => controller.abort());
    try {
      const url = ` + "`${this.baseUrl}${options.path}${buildQuery(options.query)}`" + `;
      const response = await fetch(url, {
        method: options.method.toUpperCase(),
        headers: buildHeaders({ "Content-Type": "application/json" }, this.defaultHeaders, options.headers),
        body: options.body === undefined ? undefined : JSON.stringify(options.body),
        signal: controller.signal,
      });
      if (!response.ok) {
        const body = await response.text();
        throw new ApiError("http", ` + "`request failed with status ${response.status}`" + `, response.status, body);
      }
      if (response.status === 204) {
        return undefined as T;
      }
      return (await response.json()) as T;
    } catch (err) {
      if (err instanceof ApiError) throw err;
      if (controller.signal.aborted && !options.signal?.aborted) {
        throw new ApiError("timeout", ` + "`request timed out after ${timeoutMs}ms`" + `);
      }
      throw new ApiError("network", String(err));
    } finally {
      clearTimeout(timer);
    }
  }
}

export const client = new ApiClient();
`

// Client renders client.ts: the request-executing wrapper, the error
// type, the query-string helper, and, when the openapi-ts integration is
// configured, a re-export of the external type module plus its base URL
// and header defaults.
func Client(desc *integration.Descriptor, baseURL string) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	if desc != nil {
		fmt.Fprintf(&b, "export type { paths } from %s;\n\n", tsString(desc.TypesPath))
		if desc.BaseURL != "" {
			baseURL = desc.BaseURL
		}
	}

	b.WriteString(buildQueryTS)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, clientRuntimeTS, tsString(baseURL), headersLiteral(desc))
	return b.String()
}

// headersLiteral renders the default-headers object. Keys are sorted so
// regeneration is byte-stable regardless of map order.
func headersLiteral(desc *integration.Descriptor) string {
	if desc == nil || len(desc.Headers) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(desc.Headers))
	for k := range desc.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "      %s: %s,\n", tsProp(k), tsString(desc.Headers[k]))
	}
	b.WriteString("    }")
	return b.String()
}
