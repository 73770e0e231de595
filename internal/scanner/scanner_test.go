package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/depaudit/internal/classify"
	"github.com/ethanolivertroy/depaudit/internal/models"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newScanner(t *testing.T, ignore ...string) *Scanner {
	t.Helper()
	if ignore == nil {
		ignore = models.DefaultIgnore
	}
	s, err := New(Options{Ignore: ignore, Workers: 4})
	require.NoError(t, err)
	return s
}

func TestExtractJavaScript(t *testing.T) {
	c := classify.Default()
	tests := []struct {
		line string
		want []string
	}{
		{`import axios from 'axios'`, []string{"axios"}},
		{`import React, { useState } from "react";`, []string{"react"}},
		{`import * as path from 'path'`, nil},
		{`import type { Foo } from '@scope/types/foo'`, []string{"@scope/types"}},
		{`import './styles.css'`, nil},
		{`import 'normalize.css'`, []string{"normalize.css"}},
		{`export { debounce } from 'lodash/debounce'`, []string{"lodash"}},
		{`export * from "rxjs"`, []string{"rxjs"}},
		{`} from 'vue-router'`, []string{"vue-router"}},
		{`const _ = require('lodash');`, []string{"lodash"}},
		{`const a = require("a"), b = require('b'), a2 = require('a/x')`, []string{"a", "b"}},
		{`const fs = require('fs')`, nil},
		{`import { v4 as uuidv4 } from 'uuid'`, []string{"uuid"}},
		{`const glob = require('glob')`, []string{"glob"}},
		{`import YAML from 'yaml'`, []string{"yaml"}},
		{`const mod = await import('chalk')`, []string{"chalk"}},
		{`const local = require('./local')`, nil},
		{`// nothing to see here`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.line, models.LanguageJavaScript, c))
		})
	}
}

func TestExtractOtherLanguages(t *testing.T) {
	c := classify.Default()
	tests := []struct {
		name string
		line string
		lang models.Language
		want []string
	}{
		{"php use", `use Vendor\PackageName\Something;`, models.LanguagePHP, []string{"Vendor/PackageName"}},
		{"php grouped", `use Monolog\Logger, GuzzleHttp\Client;`, models.LanguagePHP, []string{"Monolog/Logger", "GuzzleHttp/Client"}},
		{"php app namespace", `use App\Models\User;`, models.LanguagePHP, nil},
		{"php require", `require_once 'vendor/autoload.php';`, models.LanguagePHP, nil},
		{"python import", `import requests`, models.LanguagePython, []string{"requests"}},
		{"python dotted", `import numpy.linalg as la`, models.LanguagePython, []string{"numpy"}},
		{"python list", `import os, numpy, toml  # config`, models.LanguagePython, []string{"numpy", "toml"}},
		{"python from", `from flask import Flask, request`, models.LanguagePython, []string{"flask"}},
		{"python relative", `from .models import User`, models.LanguagePython, nil},
		{"python stdlib", `from typing import List`, models.LanguagePython, nil},
		{"python uuid is stdlib", `import uuid`, models.LanguagePython, nil},
		{"python node builtin name", `import path`, models.LanguagePython, []string{"path"}},
		{"ruby require", `require 'sinatra'`, models.LanguageRuby, []string{"sinatra"}},
		{"ruby stdlib", `require "json"`, models.LanguageRuby, nil},
		{"ruby relative", `require_relative 'lib/thing'`, models.LanguageRuby, nil},
		{"go has no rules", `import "github.com/spf13/cobra"`, models.LanguageGo, nil},
		{"rust has no rules", `use serde::Deserialize;`, models.LanguageRust, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.line, tt.lang, c))
		})
	}
}

func TestRuleTableCoversEveryLanguage(t *testing.T) {
	for ext, lang := range languages {
		_, ok := ruleSets[lang]
		assert.True(t, ok, "no rule set entry for %s (%s)", lang, ext)
	}
}

func TestScanRecordsLocations(t *testing.T) {
	root := t.TempDir()
	index := writeFile(t, root, "index.js", "const _ = require('lodash');\n\nimport axios from 'axios'\n")
	util := writeFile(t, root, "src/util.ts", "import { get } from 'lodash/get'\nimport x from './x'\n")
	app := writeFile(t, root, "app.py", "import requests\r\nfrom flask import Flask\r\n")

	result, err := newScanner(t).Scan(context.Background(), root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"lodash", "axios", "requests", "flask"}, result.Packages)
	assert.Equal(t, []models.Location{{File: index, Line: 1}, {File: util, Line: 1}}, result.Locations["lodash"])
	assert.Equal(t, []models.Location{{File: index, Line: 3}}, result.Locations["axios"])
	assert.Equal(t, []models.Location{{File: app, Line: 1}}, result.Locations["requests"])
	assert.Equal(t, []models.Location{{File: app, Line: 2}}, result.Locations["flask"])
}

func TestScanHonorsIgnoreGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/lodash/index.js", "require('should-not-appear')\n")
	writeFile(t, root, "dist/bundle.js", "require('bundled')\n")
	writeFile(t, root, "vendor/autoload.php", "use Hidden\\Package\\X;\n")
	writeFile(t, root, "generated/out.js", "require('generated')\n")
	writeFile(t, root, "main.js", "require('express')\n")

	result, err := newScanner(t, append(append([]string{}, models.DefaultIgnore...), "generated/**")...).Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"express"}, result.Packages)
}

func TestScanIgnoresUnanalyzedLanguages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "import \"github.com/spf13/cobra\"\n")
	writeFile(t, root, "lib.rs", "use serde::Serialize;\n")
	writeFile(t, root, "App.java", "import org.junit.Test;\n")
	writeFile(t, root, "Program.cs", "using Newtonsoft.Json;\n")
	writeFile(t, root, "README.md", "require('markdown-is-not-scanned')\n")

	result, err := newScanner(t).Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Empty(t, result.Packages)
	assert.Empty(t, result.Locations)
}

func TestScanIsDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.js", "a.js", "a/z.js", "c/d/e.js", "m.mjs", "k.vue"} {
		writeFile(t, root, name, "import dayjs from 'dayjs'\n")
	}

	first, err := newScanner(t).Scan(context.Background(), root)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := newScanner(t).Scan(context.Background(), root)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	var files []string
	for _, loc := range first.Locations["dayjs"] {
		rel, err := filepath.Rel(root, loc.File)
		require.NoError(t, err)
		files = append(files, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a.js", "a/z.js", "b.js", "c/d/e.js", "k.vue", "m.mjs"}, files)
}

func TestScanRejectsInvalidIgnorePattern(t *testing.T) {
	_, err := New(Options{Ignore: []string{"[unclosed"}})
	assert.Error(t, err)
}
