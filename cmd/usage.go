package cmd

const usage = `wait-for-url [options] [[--timeout=TIMEOUT] url...]

Waits until all the supplied URLs return HTTP/20x
When multiple URLs are provided they are checked serially.

Options:
  --help               Show this screen
  --version            Show the version and exit
  --allow-empty        Exit normally if given an empty list of URLs to check
  --timeout=TIMEOUT    Changes the timeout for all following URLs to TIMEOUT seconds
                       (default: 300, 0 or less waits forever)
  --interval=MILLIS    Pause between attempts for all following URLs (default: 0)
  --report=FILE        Write a JSON summary of the run to FILE
  --verbose            Log every attempt to stderr

URLs may reference environment variables ($NAME or ${NAME}) and contain
template actions such as {{ env "NAME" | default "localhost" }}.

Configuration:
  WAIT_FOR_URL_CONFIG  HCL file or directory with defaults for timeout, logLevel,
                       method, userAgent, headers, insecureSkipVerify,
                       followRedirects and report

Exit codes:
  0  All supplied URLs have returned HTTP/20x at least once
  1  You didn't supply valid command line arguments
  2  One of the supplied URLs did not return HTTP/20x in the required time.
`
