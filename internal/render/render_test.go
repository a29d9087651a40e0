package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querykit/querykit/internal/integration"
	"github.com/querykit/querykit/internal/model"
	"github.com/querykit/querykit/internal/naming"
)

func fixtureGroups() model.GroupedOperations {
	return model.GroupedOperations{
		{
			Tag: "pets",
			Operations: []model.Operation{
				{
					Tag: "pets", ID: "listPets", Method: model.MethodGet, Path: "/pets",
					Parameters: []model.Parameter{
						{Name: "limit", In: model.InQuery, Shape: model.ShapeNumber},
						{Name: "status", In: model.InQuery, Shape: model.ShapeArray},
					},
					Responses: []model.Response{{Status: "200", Shape: model.ShapeArray, HasSchema: true}},
				},
				{
					Tag: "pets", ID: "createPet", Method: model.MethodPost, Path: "/pets",
					RequestBody: &model.RequestBody{ContentType: "application/json", Required: true, Shape: model.ShapeObject},
					Responses:   []model.Response{{Status: "201", Shape: model.ShapeObject, HasSchema: true}},
				},
				{
					Tag: "pets", ID: "getPetById", Method: model.MethodGet, Path: "/pets/{petId}",
					Parameters: []model.Parameter{
						{Name: "petId", In: model.InPath, Required: true, Shape: model.ShapeString},
						{Name: "verbose", In: model.InQuery, Shape: model.ShapeBoolean},
					},
					Responses: []model.Response{{Status: "200", Shape: model.ShapeObject, HasSchema: true}},
				},
				{
					Tag: "pets", ID: "deletePet", Method: model.MethodDelete, Path: "/pets/{petId}",
					Parameters: []model.Parameter{
						{Name: "petId", In: model.InPath, Required: true, Shape: model.ShapeString},
					},
				},
			},
		},
		{
			Tag: "default",
			Operations: []model.Operation{
				{Tag: "default", ID: "getHealthz", Method: model.MethodGet, Path: "/healthz"},
			},
		},
	}
}

func TestQueryKeysTupleShape(t *testing.T) {
	out := QueryKeys(fixtureGroups())

	assert.Contains(t, out, `root: ["pets"] as const,`)
	assert.Contains(t, out,
		`getPetById: (params?: Record<string, unknown>) => ["pets", "getPetById", params ?? {}] as const,`)
	assert.Contains(t, out, "export const petsKeys = {")
	assert.Contains(t, out, "export const defaultKeys = {")
}

func TestCrossRendererNameAgreement(t *testing.T) {
	groups := fixtureGroups()
	keys := QueryKeys(groups)
	invalidate := Invalidate(groups)
	hooks := Hooks(groups, ".")

	for _, g := range groups {
		for _, op := range g.Operations {
			name := naming.KeyName(op.ID)
			assert.Contains(t, keys, "  "+name+": ", "queryKeys entry for %s", op.ID)
			assert.Contains(t, invalidate, "  "+name+": ", "invalidate entry for %s", op.ID)
			assert.Contains(t, hooks, "export function "+naming.HookName(op.ID)+"(", "hook for %s", op.ID)
		}
	}
}

func TestQueryVersusMutationClassification(t *testing.T) {
	out := Hooks(fixtureGroups(), ".")

	assert.Contains(t, out, "export function useListPets(")
	assert.Contains(t, out, "export function useGetPetById(")
	assert.Contains(t, out, "export function useCreatePet(")
	assert.Contains(t, out, "export function useDeletePet(")

	// Reads go through useQuery with the key factory; writes through
	// useMutation without any cache key.
	assert.Contains(t, out, "queryKey: petsKeys.getPetById(")
	assert.NotContains(t, out, "petsKeys.createPet(")
	assert.NotContains(t, out, "petsKeys.deletePet(")

	head := model.GroupedOperations{{Tag: "default", Operations: []model.Operation{
		{Tag: "default", ID: "checkHealth", Method: model.MethodHead, Path: "/healthz"},
	}}}
	assert.Contains(t, Hooks(head, "."), "return useQuery({")
}

func TestPathInterpolation(t *testing.T) {
	out := Hooks(fixtureGroups(), ".")
	assert.Contains(t, out, "path: `/pets/${params.petId}`")
	// Untemplated paths stay plain strings.
	assert.Contains(t, out, `path: "/pets"`)
}

func TestPathInterpolationOptionalFallsBackToEmptyString(t *testing.T) {
	groups := model.GroupedOperations{{Tag: "pets", Operations: []model.Operation{
		{
			Tag: "pets", ID: "getPetById", Method: model.MethodGet, Path: "/pets/{petId}",
			Parameters: []model.Parameter{
				{Name: "petId", In: model.InPath, Required: false, Shape: model.ShapeString},
			},
		},
	}}}
	out := Hooks(groups, ".")
	assert.Contains(t, out, "path: `/pets/${params.petId ?? \"\"}`")
	assert.NotContains(t, out, "undefined}`")
}

func TestMutationVariables(t *testing.T) {
	out := Hooks(fixtureGroups(), ".")

	assert.Contains(t, out, "mutationFn: (variables: { body: Record<string, unknown> }) =>")
	assert.Contains(t, out, "body: variables.body")
	assert.Contains(t, out, "mutationFn: (variables: { petId: string }) =>")
	assert.Contains(t, out, "path: `/pets/${variables.petId}`")
}

func TestGroupingModeChangesImportsOnly(t *testing.T) {
	groups := fixtureGroups()
	combined := Hooks(groups, ".")

	var perTag strings.Builder
	for _, g := range groups {
		perTag.WriteString(Hooks(model.GroupedOperations{g}, ".."))
	}

	assert.Contains(t, combined, `from "./client"`)
	assert.Contains(t, combined, `from "./queryKeys"`)
	assert.Contains(t, perTag.String(), `from "../client"`)
	assert.Contains(t, perTag.String(), `from "../queryKeys"`)

	// Same hook exports in both modes, identifiers untouched.
	for _, g := range groups {
		for _, op := range g.Operations {
			decl := "export function " + naming.HookName(op.ID) + "("
			assert.Contains(t, combined, decl)
			assert.Contains(t, perTag.String(), decl)
		}
	}
	assert.Equal(t,
		strings.Count(combined, "export function use"),
		strings.Count(perTag.String(), "export function use"))
}

func TestHooksImportOnlyWhatIsUsed(t *testing.T) {
	queriesOnly := model.GroupedOperations{{Tag: "pets", Operations: []model.Operation{
		{Tag: "pets", ID: "listPets", Method: model.MethodGet, Path: "/pets"},
	}}}
	out := Hooks(queriesOnly, ".")
	assert.Contains(t, out, `import { useQuery } from "@tanstack/react-query";`)
	assert.NotContains(t, out, "useMutation")

	mutationsOnly := model.GroupedOperations{{Tag: "pets", Operations: []model.Operation{
		{Tag: "pets", ID: "createPet", Method: model.MethodPost, Path: "/pets"},
	}}}
	out = Hooks(mutationsOnly, ".")
	assert.Contains(t, out, `import { useMutation } from "@tanstack/react-query";`)
	assert.NotContains(t, out, "useQuery")
	// No query hooks means no key factory import either.
	assert.NotContains(t, out, "queryKeys")
}

func TestInvalidateTargetsKeyFactory(t *testing.T) {
	out := Invalidate(fixtureGroups())

	assert.Contains(t, out, "export const invalidatePets = {")
	assert.Contains(t, out, "queryClient.invalidateQueries({ queryKey: petsKeys.root })")
	assert.Contains(t, out, "queryClient.invalidateQueries({ queryKey: petsKeys.getPetById(params) })")
	assert.Contains(t, out, `import { petsKeys, defaultKeys } from "./queryKeys";`)
}

func TestClientDefaults(t *testing.T) {
	out := Client(nil, "https://petstore.example.com/v1")

	assert.Contains(t, out, `private readonly baseUrl: string = "https://petstore.example.com/v1",`)
	assert.Contains(t, out, "export class ApiError extends Error {")
	assert.Contains(t, out, "export const defaultRetry = 3;")
	assert.Contains(t, out, "export const client = new ApiClient();")
	assert.NotContains(t, out, "export type { paths }")
}

func TestClientWithIntegration(t *testing.T) {
	desc := &integration.Descriptor{
		TypesPath: "./types/api",
		BaseURL:   "https://api.example.com",
		Headers:   map[string]string{"X-Client": "querykit", "Authorization": "Bearer token"},
	}
	out := Client(desc, "https://ignored.example.com")

	assert.Contains(t, out, `export type { paths } from "./types/api";`)
	// Integration base URL wins over the document's.
	assert.Contains(t, out, `baseUrl: string = "https://api.example.com",`)
	// Header keys render sorted so output is byte-stable.
	auth := strings.Index(out, "Authorization")
	client := strings.Index(out, "X-Client")
	require.Greater(t, auth, 0)
	require.Greater(t, client, auth)
}

func TestClientEmitsQueryPolicy(t *testing.T) {
	out := Client(nil, "")
	assert.Contains(t, out, "export function buildQuery(params?: Record<string, unknown>): string {")
	assert.Contains(t, out, "if (value === undefined || value === null) continue;")
	assert.Contains(t, out, `return parts.length === 0 ? "" : `)
}

func TestTypesRenderer(t *testing.T) {
	out := Types(fixtureGroups())

	assert.Contains(t, out, "export interface GetPetByIdParams {")
	assert.Contains(t, out, "  petId: string;")
	assert.Contains(t, out, "  verbose?: boolean;")
	assert.Contains(t, out, "  status?: unknown[];")
	// Operations without parameters declare nothing.
	assert.NotContains(t, out, "CreatePetParams")
	assert.NotContains(t, out, "GetHealthzParams")
}

func TestIntegrationConfigReemission(t *testing.T) {
	out := IntegrationConfig(&integration.Descriptor{
		TypesPath: "./types/api",
		Headers:   map[string]string{"X-Api-Key": "abc"},
	})

	assert.Contains(t, out, `typesPath: "./types/api",`)
	assert.Contains(t, out, `"X-Api-Key": "abc",`)
	assert.Contains(t, out, "export default config;")
	assert.NotContains(t, out, "baseUrl:")
}

func TestRenderersAreDeterministic(t *testing.T) {
	groups := fixtureGroups()
	desc := &integration.Descriptor{
		TypesPath: "./types",
		Headers:   map[string]string{"b": "2", "a": "1", "c": "3"},
	}

	assert.Equal(t, Client(desc, "x"), Client(desc, "x"))
	assert.Equal(t, QueryKeys(groups), QueryKeys(groups))
	assert.Equal(t, Invalidate(groups), Invalidate(groups))
	assert.Equal(t, Hooks(groups, "."), Hooks(groups, "."))
	assert.Equal(t, Types(groups), Types(groups))
	assert.Equal(t, IntegrationConfig(desc), IntegrationConfig(desc))
}

func TestOptionalHeaderNeverReachesTheWireUndefined(t *testing.T) {
	groups := model.GroupedOperations{{Tag: "pets", Operations: []model.Operation{
		{
			Tag: "pets", ID: "getPetById", Method: model.MethodGet, Path: "/pets/{petId}",
			Parameters: []model.Parameter{
				{Name: "petId", In: model.InPath, Required: true, Shape: model.ShapeString},
				{Name: "api_key", In: model.InHeader, Shape: model.ShapeString},
			},
		},
	}}}
	hooks := Hooks(groups, ".")
	assert.Contains(t, hooks, "params: { petId: string; api_key?: string }")
	assert.Contains(t, hooks, "headers: { api_key: params.api_key }")

	// The emitted client accepts unknown header values and drops undefined
	// and null entries before fetch, so an omitted optional header is never
	// sent as the literal string "undefined".
	client := Client(nil, "")
	assert.Contains(t, client, "headers?: Record<string, unknown>;")
	assert.Contains(t, client, "export function buildHeaders(")
	assert.Contains(t, client, "if (value === undefined || value === null) continue;\n      headers[key] = String(value);")
	assert.Contains(t, client, "headers: buildHeaders({ \"Content-Type\": \"application/json\" }, this.defaultHeaders, options.headers),")
	assert.NotContains(t, client, "...options.headers")
}

func TestDuplicateParameterDeclarationsEmitOnce(t *testing.T) {
	// The model keeps the additive path-item + operation merge, duplicates
	// included; emitted object types and literals declare each name once.
	groups := model.GroupedOperations{{Tag: "pets", Operations: []model.Operation{
		{
			Tag: "pets", ID: "getPetById", Method: model.MethodGet, Path: "/pets/{petId}",
			Parameters: []model.Parameter{
				{Name: "petId", In: model.InPath, Required: true, Shape: model.ShapeString},
				{Name: "petId", In: model.InPath, Required: true, Shape: model.ShapeString},
				{Name: "verbose", In: model.InQuery, Shape: model.ShapeBoolean},
			},
		},
	}}}

	hooks := Hooks(groups, ".")
	assert.Contains(t, hooks, "params: { petId: string; verbose?: boolean }")
	assert.Equal(t, 1, strings.Count(hooks, "petId: string"))

	types := Types(groups)
	assert.Equal(t, 1, strings.Count(types, "petId: string;"))
}

func TestQuotedPropertyNames(t *testing.T) {
	groups := model.GroupedOperations{{Tag: "pets", Operations: []model.Operation{
		{
			Tag: "pets", ID: "listPets", Method: model.MethodGet, Path: "/pets",
			Parameters: []model.Parameter{
				{Name: "X-Request-Id", In: model.InHeader, Shape: model.ShapeString},
			},
		},
	}}}
	out := Hooks(groups, ".")
	assert.Contains(t, out, `headers: { "X-Request-Id": params["X-Request-Id"] }`)
}
