package classify

// Build, test, lint and tooling packages that are normally used through
// configuration rather than imports.

var jsDevOnly = []string{
	// build tools
	"react-scripts", "vite", "@vitejs/plugin-react", "@vitejs/plugin-vue", "@vitejs/plugin-svelte",
	"webpack", "webpack-cli", "webpack-dev-server", "webpack-merge", "rollup",
	"rollup-plugin-typescript2", "rollup-plugin-terser", "parcel", "esbuild", "swc", "@swc/core",
	"@swc/cli", "turbo", "nx", "lerna", "rush",

	// typescript and type definitions
	"typescript", "ts-node", "tsx", "ts-jest", "ts-loader", "tsc-alias",
	"@types/react", "@types/react-dom", "@types/react-router-dom", "@types/node", "@types/express",
	"@types/cors", "@types/bcrypt", "@types/jsonwebtoken", "@types/multer", "@types/passport",
	"@types/lodash", "@types/uuid", "@types/debug", "@types/cookie-parser", "@types/compression",
	"@types/helmet", "@types/morgan", "@types/vscode", "@types/fs-extra", "@types/glob",
	"@types/mocha", "@types/jest", "@types/chai", "@types/sinon", "@types/supertest",
	"@types/selenium-webdriver", "@types/puppeteer",

	// framework CLIs and compilers
	"@vue/cli", "@vue/cli-service", "@vue/cli-plugin-router", "@vue/cli-plugin-vuex",
	"@vue/cli-plugin-typescript", "@vue/cli-plugin-eslint", "@vue/cli-plugin-pwa",
	"vue-cli-plugin-vuetify", "@vue/test-utils", "@vue/vue3-jest", "vue-jest", "vue-loader",
	"vue-style-loader", "vue-template-compiler", "@vue/compiler-sfc",
	"@vue/eslint-config-typescript", "@vue/eslint-config-prettier", "nuxt",
	"@nuxt/typescript-build", "@nuxt/typescript-runtime",
	"create-react-app", "@craco/craco", "react-app-rewired", "customize-cra", "react-dev-utils",
	"react-error-overlay", "react-hot-loader", "@hot-loader/react-dom", "react-refresh",
	"@pmmmwh/react-refresh-webpack-plugin",
	"@angular/cli", "@angular-devkit/build-angular", "@angular-devkit/architect",
	"@angular-devkit/core", "@angular-devkit/schematics", "@angular/compiler-cli",
	"@angular/language-service", "@angular-eslint/builder", "@angular-eslint/eslint-plugin",
	"@angular-eslint/eslint-plugin-template", "@angular-eslint/schematics",
	"@angular-eslint/template-parser", "ng-packagr", "protractor", "jasmine-core",
	"jasmine-spec-reporter", "karma", "karma-chrome-launcher", "karma-coverage", "karma-jasmine",
	"karma-jasmine-html-reporter",
	"@sveltejs/kit", "@sveltejs/adapter-auto", "@sveltejs/adapter-node", "@sveltejs/adapter-static",
	"@sveltejs/vite-plugin-svelte", "svelte-check", "svelte-loader", "svelte-preprocess",

	// test frameworks
	"jest", "jest-environment-jsdom", "jest-environment-node", "@jest/globals", "mocha", "chai",
	"sinon", "supertest", "cypress", "playwright", "@playwright/test", "puppeteer",
	"selenium-webdriver", "webdriverio", "@wdio/cli", "@wdio/local-runner",
	"@wdio/mocha-framework", "@testing-library/react", "@testing-library/vue",
	"@testing-library/svelte", "@testing-library/angular", "@testing-library/jest-dom",
	"@testing-library/user-event", "vitest", "@vitest/ui", "ava", "tap", "tape", "qunit", "enzyme",
	"enzyme-adapter-react-16", "enzyme-adapter-react-17", "enzyme-to-json",

	// linters and formatters
	"eslint", "@eslint/js", "@eslint/eslintrc", "eslint-config-airbnb", "eslint-config-airbnb-base",
	"eslint-config-prettier", "eslint-config-standard", "eslint-plugin-import",
	"eslint-plugin-jsx-a11y", "eslint-plugin-react", "eslint-plugin-react-hooks",
	"eslint-plugin-vue", "eslint-plugin-svelte3", "@typescript-eslint/eslint-plugin",
	"@typescript-eslint/parser", "prettier", "stylelint", "stylelint-config-standard",
	"stylelint-config-prettier", "stylelint-scss", "jshint", "jslint", "tslint", "xo", "standard",
	"semistandard",

	// styling pipeline
	"sass", "node-sass", "sass-loader", "less", "less-loader", "stylus", "stylus-loader", "postcss",
	"postcss-cli", "postcss-loader", "autoprefixer", "tailwindcss", "@tailwindcss/forms",
	"@tailwindcss/typography", "@tailwindcss/aspect-ratio", "css-loader", "style-loader",
	"mini-css-extract-plugin", "extract-text-webpack-plugin", "optimize-css-assets-webpack-plugin",
	"purgecss", "@fullhuman/postcss-purgecss",

	// dev utilities
	"nodemon", "concurrently", "npm-run-all", "npm-run-all2", "wait-on", "cross-env", "dotenv-cli",
	"env-cmd", "rimraf", "del-cli", "cpx", "copyfiles", "chokidar-cli", "live-server",
	"browser-sync", "http-server", "serve", "static-server",

	// docs
	"typedoc", "jsdoc", "esdoc", "documentation", "docsify", "docsify-cli", "gitbook",
	"gitbook-cli", "vuepress", "@vuepress/cli", "docusaurus", "@docusaurus/core", "storybook",
	"@storybook/react", "@storybook/vue", "@storybook/angular", "@storybook/svelte",

	// git hooks and release
	"husky", "lint-staged", "pre-commit", "commitizen", "cz-conventional-changelog", "commitlint",
	"@commitlint/cli", "@commitlint/config-conventional", "semantic-release", "standard-version",
	"release-it",

	// editor extensions
	"@vscode/test-cli", "@vscode/test-electron", "@vscode/vsce",

	// bundle analysis
	"webpack-bundle-analyzer", "source-map-explorer", "lighthouse",

	// database CLIs
	"sequelize-cli", "prisma", "mongodb-memory-server",
}

var pythonDevOnly = []string{
	"pytest", "pytest-cov", "pytest-mock", "pytest-django", "pytest-flask", "pytest-asyncio",
	"pytest-vcr", "unittest2", "nose", "nose2", "coverage", "coveralls", "codecov", "tox",
	"flake8", "pylint", "pycodestyle", "pyflakes", "autopep8", "black", "isort", "mypy", "bandit",
	"safety", "ruff", "sphinx", "sphinx-rtd-theme", "mkdocs", "mkdocs-material", "jupyter",
	"notebook", "ipython", "pipenv", "poetry", "setuptools", "wheel", "twine", "bump2version",
	"factory-boy", "faker", "mock", "responses", "vcr", "django-debug-toolbar",
	"django-extensions", "flask-testing", "types-requests",
}

var phpDevOnly = []string{
	"phpunit/phpunit", "phpstan/phpstan", "psalm/phar", "vimeo/psalm", "squizlabs/php_codesniffer",
	"friendsofphp/php-cs-fixer", "phpmd/phpmd", "sebastian/phpcpd", "phploc/phploc",
	"pdepend/pdepend", "mockery/mockery", "fakerphp/faker", "laravel/telescope", "laravel/dusk",
	"laravel/tinker", "laravel/sail", "laravel/pint", "barryvdh/laravel-debugbar",
	"barryvdh/laravel-ide-helper", "symfony/debug-bundle", "symfony/web-profiler-bundle",
	"symfony/maker-bundle", "doctrine/doctrine-fixtures-bundle", "phpspec/phpspec",
	"behat/behat", "codeception/codeception", "deployer/deployer", "roave/security-advisories",
	"nunomaduro/collision",
}

var rubyDevOnly = []string{
	"rspec", "rspec-core", "rspec-expectations", "rspec-mocks", "rspec-rails", "minitest",
	"test-unit", "capybara", "factory_bot", "factory_bot_rails", "rubocop", "rubocop-rails",
	"rubocop-rspec", "reek", "brakeman", "bundler-audit", "simplecov", "guard", "guard-rspec",
	"guard-livereload", "spring", "spring-commands-rspec", "byebug", "pry", "pry-rails",
	"better_errors", "binding_of_caller", "web-console", "listen", "yard", "rdoc", "rails-erd",
	"annotate",
}

var javaDevOnly = []string{
	"junit", "junit-jupiter", "junit-jupiter-api", "testng", "mockito-core", "mockito",
	"powermock", "hamcrest", "assertj-core", "spring-boot-starter-test", "spring-test",
	"spring-boot-devtools", "selenium-java", "cucumber-java", "rest-assured", "wiremock",
	"checkstyle", "pmd", "spotbugs", "findbugs", "jacoco", "maven-surefire-plugin",
	"maven-failsafe-plugin", "maven-checkstyle-plugin", "maven-pmd-plugin",
	"maven-spotbugs-plugin", "lombok",
	// Kotlin
	"kotlintest", "mockk", "kluent", "detekt", "ktlint", "kotlinx-coroutines-test",
}

var dotnetDevOnly = []string{
	"microsoft.net.test.sdk", "xunit", "xunit.runner.visualstudio", "nunit", "nunit3testadapter",
	"mstest.testframework", "mstest.testadapter", "moq", "fluentassertions", "autofixture", "bogus",
	"coverlet.collector", "coverlet.msbuild", "reportgenerator", "stylecop.analyzers",
	"microsoft.codeanalysis.analyzers", "sonaranalyzer.csharp",
}

var goDevOnly = []string{
	"github.com/stretchr/testify", "github.com/golang/mock", "go.uber.org/mock",
	"github.com/onsi/ginkgo", "github.com/onsi/ginkgo/v2", "github.com/onsi/gomega",
	"github.com/golangci/golangci-lint", "github.com/google/go-cmp", "gotest.tools/v3",
	"honnef.co/go/tools", "golang.org/x/tools",
}

var rustDevOnly = []string{
	"tokio-test", "proptest", "criterion", "mockall", "serial_test", "tempfile", "assert_cmd",
	"predicates", "pretty_assertions", "insta", "cargo-audit", "cargo-outdated", "cargo-deny",
	"cargo-tarpaulin", "cargo-watch", "cargo-expand", "clippy", "rustfmt",
}

var otherDevOnly = []string{
	// Swift
	"quick", "nimble", "ohhttpstubs", "cuckoo", "swiftlint", "swiftformat", "sourcery", "xctest",
	// Scala
	"scalatest", "scalamock", "scalacheck", "specs2", "sbt", "scalastyle", "wartremover", "scoverage",
	// Elixir
	"exunit", "bypass", "credo", "dialyxir", "excoveralls", "ex_doc", "phoenix_live_reload",
	// Haskell
	"hspec", "quickcheck", "tasty", "hlint", "hindent", "stylish-haskell",
	// Dart / Flutter
	"test", "mockito", "flutter_test", "integration_test", "flutter_driver", "flutter_lints",
	"lints", "build_runner", "dart_code_metrics", "pedantic", "effective_dart", "dartdoc",
}
