/*Command bio-interval-diff subtracts one set of closed integer intervals from
  another and prints the result as a sorted list of disjoint intervals.

  Interactive use prompts for two lines, include intervals and then exclude
  intervals:

    $ bio-interval-diff prompt
    Please enter include intervals (example 1-3, 4-5):
    10-100, 200-300, 400-500
    Please enter exclude intervals (example 1-3, 4-5):
    95-205, 410-420
    Output:
    10-94, 206-300, 400-409, 421-500

  Batch use reads the two lists from files (optionally gzipped):

    bio-interval-diff files --include=inc.txt --exclude=exc.txt.gz --format=tsv --output=out.tsv
*/
package main
